package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/inventory-tracker/internal/models"
	"github.com/sbilibin2017/inventory-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRentalService_ListByProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockRentalReader(ctrl)
	writer := services.NewMockRentalWriter(ctrl)

	want := []models.RentalDB{
		{ProductSN: "ABCDE123", StartDate: "2024-07-19 17:19:10", TransactionType: 1, Qty: 2},
	}
	reader.EXPECT().ListByProduct(gomock.Any(), "ABCDE123").Return(want, nil)

	svc := services.NewRentalService(reader, writer)
	got, err := svc.ListByProduct(context.Background(), "ABCDE123")
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRentalService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockRentalReader(ctrl)
	writer := services.NewMockRentalWriter(ctrl)

	endDate := "2024-07-21"
	writer.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r models.RentalDB) error {
			assert.NotEqual(t, uuid.Nil, r.RentalID)
			assert.Equal(t, "2024-07-19 17:19:10", r.StartDate)
			assert.NotNil(t, r.EndDate)
			assert.Equal(t, "2024-07-21 00:00:00", *r.EndDate)
			return nil
		})

	svc := services.NewRentalService(reader, writer)
	created, err := svc.Create(context.Background(), models.RentalDB{
		ProductSN:       "ABCDE123",
		StartDate:       "2024-07-19 17:19:10",
		TransactionType: 1,
		EndDate:         &endDate,
		Qty:             2.5,
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.RentalID)
}

func TestRentalService_Create_OpenEnded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockRentalReader(ctrl)
	writer := services.NewMockRentalWriter(ctrl)

	writer.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r models.RentalDB) error {
			assert.Nil(t, r.EndDate)
			return nil
		})

	svc := services.NewRentalService(reader, writer)
	_, err := svc.Create(context.Background(), models.RentalDB{
		ProductSN:       "ABCDE123",
		StartDate:       "2024-07-19 17:19:10",
		TransactionType: 2,
		Qty:             1,
	})
	assert.NoError(t, err)
}

func TestRentalService_Update_KeyComesFromIdentifierNotBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockRentalReader(ctrl)
	writer := services.NewMockRentalWriter(ctrl)

	// The body carries a different start date; it must not move the key.
	writer.EXPECT().Update(gomock.Any(), "ABCDE123", "2024-07-19 17:19:10", gomock.Any()).Return(nil)

	svc := services.NewRentalService(reader, writer)
	err := svc.Update(context.Background(), "ABCDE123", "2024-07-19 17:19:10", models.RentalDB{
		StartDate:       "2030-01-01 00:00:00",
		TransactionType: 2,
		Qty:             1,
	})
	assert.NoError(t, err)
}

func TestRentalService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockRentalReader(ctrl)
	writer := services.NewMockRentalWriter(ctrl)

	writer.EXPECT().Delete(gomock.Any(), "ABCDE123", "2024-07-19 17:19:10").Return(nil)

	svc := services.NewRentalService(reader, writer)
	assert.NoError(t, svc.Delete(context.Background(), "ABCDE123", "2024-07-19 17:19:10"))
}

func TestRentalService_WriterErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockRentalReader(ctrl)
	writer := services.NewMockRentalWriter(ctrl)

	writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
	writer.EXPECT().Update(gomock.Any(), "sn", "k", gomock.Any()).Return(errors.New("db error"))
	writer.EXPECT().Delete(gomock.Any(), "sn", "k").Return(errors.New("db error"))

	svc := services.NewRentalService(reader, writer)

	_, err := svc.Create(context.Background(), models.RentalDB{ProductSN: "sn", StartDate: "k"})
	assert.Error(t, err)
	assert.Error(t, svc.Update(context.Background(), "sn", "k", models.RentalDB{}))
	assert.Error(t, svc.Delete(context.Background(), "sn", "k"))
}
