package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mithil2603/machinery-backend/internal/models"
	"github.com/Mithil2603/machinery-backend/internal/repositories"
	"github.com/Mithil2603/machinery-backend/test/helpers"
)

func TestOrderRepository_PlaceAndFind(t *testing.T) {
	db := helpers.NewTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	user := createUser(t, userRepo, "buyer@test.com")
	product := helpers.SeedProduct(t, db, "Warping Machine")

	details := []models.OrderDetail{
		{ProductID: product.ProductID, Quantity: 2, NoOfEnds: 480, CreelType: "V", CreelPitch: 300, BobinLength: 1200},
		{ProductID: product.ProductID, Quantity: 1},
	}

	orderID, err := orderRepo.Place(user.UserID, details)
	assert.NoError(t, err)
	assert.NotZero(t, orderID)

	order, err := orderRepo.FindByID(orderID)
	assert.NoError(t, err)
	assert.Equal(t, user.UserID, order.UserID)
	assert.Len(t, order.Details, 2)
	assert.Equal(t, 480, order.Details[0].NoOfEnds)
}

func TestOrderRepository_Place_RollsBackOnFailure(t *testing.T) {
	db := helpers.NewTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	user := createUser(t, userRepo, "atomic@test.com")
	product := helpers.SeedProduct(t, db, "Sizing Machine")

	// The second detail violates the product foreign key, so the whole
	// order must roll back.
	details := []models.OrderDetail{
		{ProductID: product.ProductID, Quantity: 1},
		{ProductID: 99999, Quantity: 1},
	}

	_, err := orderRepo.Place(user.UserID, details)
	assert.Error(t, err)

	var orderCount, detailCount int64
	assert.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.NoError(t, db.Model(&models.OrderDetail{}).Count(&detailCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, detailCount)
}

func TestOrderDetail_ProductConstraint(t *testing.T) {
	db := helpers.NewTestDB(t)

	// Products insert freely; the foreign key sits on the detail side.
	product := helpers.SeedProduct(t, db, "Standalone Product")
	assert.NotZero(t, product.ProductID)

	userRepo := repositories.NewUserRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	user := createUser(t, userRepo, "fk@test.com")

	orderID, err := orderRepo.Place(user.UserID, []models.OrderDetail{{ProductID: product.ProductID, Quantity: 1}})
	assert.NoError(t, err)

	// A detail row pointing at a nonexistent product is rejected by the
	// store constraint.
	detail := models.OrderDetail{OrderID: orderID, ProductID: 55555, Quantity: 1}
	assert.Error(t, db.Create(&detail).Error)
}

func TestOrderRepository_FindByUser(t *testing.T) {
	db := helpers.NewTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	buyer := createUser(t, userRepo, "mine@test.com")
	other := createUser(t, userRepo, "other@test.com")
	product := helpers.SeedProduct(t, db, "Creel")

	_, err := orderRepo.Place(buyer.UserID, []models.OrderDetail{{ProductID: product.ProductID, Quantity: 1}})
	assert.NoError(t, err)
	_, err = orderRepo.Place(buyer.UserID, []models.OrderDetail{{ProductID: product.ProductID, Quantity: 3}})
	assert.NoError(t, err)
	_, err = orderRepo.Place(other.UserID, []models.OrderDetail{{ProductID: product.ProductID, Quantity: 5}})
	assert.NoError(t, err)

	orders, err := orderRepo.FindByUser(buyer.UserID)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, buyer.UserID, o.UserID)
		assert.NotEmpty(t, o.Details)
	}
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	db := helpers.NewTestDB(t)
	orderRepo := repositories.NewOrderRepository(db)

	_, err := orderRepo.FindByID(424242)
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
}
