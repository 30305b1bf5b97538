package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Get(ctx context.Context, id string) (User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	return u, err
}

func (r *Repo) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

type AdminListParams struct {
	Q        string
	Page     int
	PageSize int
}

type AdminListResult struct {
	Items []User
	Total int64
}

func (r *Repo) AdminList(ctx context.Context, in AdminListParams) (AdminListResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	size := in.PageSize
	if size < 1 || size > 100 {
		size = 30
	}

	base := r.db.WithContext(ctx).Model(&User{})
	if q := strings.TrimSpace(in.Q); q != "" {
		like := "%" + q + "%"
		base = base.Where("(email LIKE ? OR full_name LIKE ?)", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return AdminListResult{}, err
	}

	var items []User
	if err := base.
		Order("created_at DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&items).Error; err != nil {
		return AdminListResult{}, err
	}

	return AdminListResult{Items: items, Total: total}, nil
}

type Counts struct {
	Total     int64
	Banned    int64
	Suspended int64
}

func (r *Repo) Count(ctx context.Context) (Counts, error) {
	var c Counts
	if err := r.db.WithContext(ctx).Model(&User{}).Count(&c.Total).Error; err != nil {
		return Counts{}, err
	}
	if err := r.db.WithContext(ctx).Model(&User{}).Where("is_banned = ?", true).Count(&c.Banned).Error; err != nil {
		return Counts{}, err
	}
	err := r.db.WithContext(ctx).Model(&User{}).
		Where("is_suspended = ? AND (suspended_until IS NULL OR suspended_until > ?)", true, time.Now()).
		Count(&c.Suspended).Error
	return c, err
}

func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return false
}
