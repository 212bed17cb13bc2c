package dto_test

import (
	"testing"
	"time"

	"frontdesk/internal/domains/billing"
	"frontdesk/internal/domains/hall/model"
	"frontdesk/internal/domains/hall/model/dto"
	"frontdesk/shared/timezone"
	"frontdesk/shared/validator"

	"github.com/stretchr/testify/assert"
)

func bookRequest() dto.BookHallRequest {
	return dto.BookHallRequest{
		CustomerName:   "Meera Iyer",
		Contact:        "9800000000",
		Purpose:        "Wedding reception",
		CheckInDate:    "2024-06-01",
		CheckInTime:    "14:00",
		CheckOutDate:   "2024-06-01",
		CheckOutTime:   "18:30",
		Adults:         100,
		Children:       20,
		FoodPreference: model.FoodMixed,
		AddOns:         []string{billing.AddOnDecoration, billing.AddOnStage},
	}
}

func TestBookHallRequest_Apply(t *testing.T) {
	req := bookRequest()
	hall := req.Apply(model.Hall{Name: "Grand Ballroom", Price: 10000, Status: model.StatusAvailable})

	assert.Equal(t, model.StatusBooked, hall.Status)
	assert.True(t, time.Date(2024, 6, 1, 14, 0, 0, 0, timezone.GetLocation()).Equal(*hall.CheckIn))
	// 5 hours rounded up, 100 adults, 20 children, decoration and stage
	assert.Equal(t, 50000.0+88000.0+25000.0, *hall.TotalPrice)
	assert.Equal(t, 88000.0, *hall.FoodCost)
	assert.Nil(t, hall.IDProof)
	assert.Equal(t, model.FoodMixed, *hall.FoodPreference)
}

func TestBookHallRequest_Validation(t *testing.T) {
	req := bookRequest()
	assert.NoError(t, validator.ValidateStruct(&req))

	badTime := bookRequest()
	badTime.CheckInTime = "2pm"
	assert.Error(t, validator.ValidateStruct(&badTime))

	unknownAddOn := bookRequest()
	unknownAddOn.AddOns = []string{"fireworks"}
	assert.Error(t, validator.ValidateStruct(&unknownAddOn))

	badFood := bookRequest()
	badFood.FoodPreference = "vegan"
	assert.Error(t, validator.ValidateStruct(&badFood))
}

func TestHallResponse_FromModel(t *testing.T) {
	var res dto.HallResponse
	res.FromModel(model.Hall{Name: "Garden Pavilion", Status: model.StatusAvailable})

	assert.Equal(t, []string{}, res.Facilities)
	assert.Nil(t, res.CheckIn)
	assert.Nil(t, res.AddOns)
}

func TestRequests_ArrayColumnsAreNeverNull(t *testing.T) {
	create := dto.CreateHallRequest{Name: "Terrace", Capacity: 40, Price: 2000}
	created := create.ToModel("admin")

	facilities, err := created.Facilities.Value()
	assert.NoError(t, err)
	assert.Equal(t, "{}", facilities)

	addOns, err := created.AddOns.Value()
	assert.NoError(t, err)
	assert.Equal(t, "{}", addOns)

	req := bookRequest()
	req.AddOns = nil
	booked := req.Apply(created)

	addOns, err = booked.AddOns.Value()
	assert.NoError(t, err)
	assert.Equal(t, "{}", addOns)
}
