package shared_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"frontdesk/shared"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	gModel "frontdesk/shared/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("maybe"))
	assert.True(t, *shared.ConvertStringToBool("true"))
	assert.False(t, *shared.ConvertStringToBool("0"))
}

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(100, 0))
	assert.Equal(t, 10, shared.CalculateTotalPage(100, 10))
	assert.Equal(t, 11, shared.CalculateTotalPage(101, 10))
}

type partialUpdate struct {
	Type   string `db:"type"`
	Price  *int   `db:"price"`
	Status string `db:"status"`
	Note   string
}

func TestTransformFields(t *testing.T) {
	price := 0
	fields := shared.TransformFields(partialUpdate{Type: "Deluxe", Price: &price, Note: "skip"}, "clerk")

	assert.Equal(t, "Deluxe", fields["type"])
	assert.Equal(t, &price, fields["price"])
	assert.NotContains(t, fields, "status")
	assert.Equal(t, "clerk", fields[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, fields[constant.FieldModifiedAt])
}

type stayRow struct {
	Number string     `db:"number"`
	Guest  *string    `db:"guest"`
	Out    *time.Time `db:"check_out"`
	Ignore string     `db:"-"`
	gModel.Metadata
}

func TestStructColumns(t *testing.T) {
	row := stayRow{Number: "101", Metadata: gModel.NewMetadata("seed", time.Now())}

	columns := shared.StructColumns(row, "clerk", "number")

	assert.NotContains(t, columns, "number")
	assert.NotContains(t, columns, "-")
	assert.NotContains(t, columns, constant.FieldCreatedAt)
	assert.NotContains(t, columns, constant.FieldCreatedBy)
	assert.Contains(t, columns, "guest")
	assert.Nil(t, columns["guest"])
	assert.Contains(t, columns, "check_out")
	assert.Equal(t, "clerk", columns[constant.FieldModifiedBy])
}

func TestFilterByField(t *testing.T) {
	filter := shared.FilterByField("number", "101", "rooms")
	where, args := filter.GetWhereClause()

	assert.Equal(t, "(rooms.number = :number)", where)
	assert.Equal(t, "101", args["number"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:gets", shared.BuildCacheKey("booking:gets"))
	assert.Equal(t, "guest:get:42", shared.BuildCacheKey("guest:get", "42"))

	filter := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "name", Operator: dto.FilterOperatorLike, Value: "asha"},
			dto.Filter{Field: "email", Operator: dto.FilterOperatorEq, Value: "a@b.c"},
		},
	}

	key := shared.BuildCacheKeyWithQuery("guest:gets", dto.QueryParams{Page: 1, Limit: 10}, filter)
	assert.Equal(t, "guest:gets:1:10:::email=a@b.c:name=%asha%", key)
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "booking:gets*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "booking:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "guest:gets*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "guest:gets")
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, shared.Paginate(items, 1, 2))
	assert.Equal(t, []int{5}, shared.Paginate(items, 3, 2))
	assert.Equal(t, []int{}, shared.Paginate(items, 4, 2))
	assert.Equal(t, items, shared.Paginate(items, 0, 0))
	assert.Equal(t, []int{1, 2, 3}, shared.Paginate(items, 0, 3))
}

func TestSortByKey(t *testing.T) {
	items := []string{"202", "101", "103"}
	identity := func(s string) string { return s }

	assert.Equal(t, []string{"101", "103", "202"}, shared.SortByKey(items, identity, ""))
	assert.Equal(t, []string{"202", "103", "101"}, shared.SortByKey(items, identity, "desc"))
	assert.Equal(t, []string{"202", "101", "103"}, items)
}
