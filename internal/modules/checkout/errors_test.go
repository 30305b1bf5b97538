package checkout

import (
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestOutOfStockErrorMessage(t *testing.T) {
	err := &OutOfStockError{Items: []OutOfStockItem{
		{ProductID: "p1", Requested: 3, Available: 1},
	}}
	assert.Equal(t, "out of stock: product=p1 requested=3 available=1", err.Error())

	empty := &OutOfStockError{}
	assert.Equal(t, "out of stock", empty.Error())
}

func TestIsRetryableMySQLError(t *testing.T) {
	assert.True(t, isRetryableMySQLError(&mysql.MySQLError{Number: 1213}))
	assert.True(t, isRetryableMySQLError(&mysql.MySQLError{Number: 1205}))
	assert.False(t, isRetryableMySQLError(&mysql.MySQLError{Number: 1062}))
	assert.False(t, isRetryableMySQLError(assert.AnError))
	assert.False(t, isRetryableMySQLError(nil))
}
