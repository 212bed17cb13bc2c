package shared

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) int {
	if total == 0 || limit <= 0 {
		return 1
	}

	return (total + limit - 1) / limit
}

// TransformFields maps the non-zero db-tagged fields of a struct for a partial update.
// A non-nil pointer to a zero value still counts, which is how callers clear a number.
func TransformFields(data any, username string) map[string]any {
	fields := make(map[string]any)
	collectColumns(reflect.ValueOf(data), fields, true)

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = username

	return fields
}

// StructColumns maps every db-tagged field of a struct, zero values included,
// so a full row write can clear columns. Embedded structs are flattened.
func StructColumns(data any, username string, exclude ...string) map[string]any {
	columns := make(map[string]any)
	collectColumns(reflect.ValueOf(data), columns, false)

	for _, col := range slices.Concat(exclude, []string{constant.FieldCreatedAt, constant.FieldCreatedBy}) {
		delete(columns, col)
	}

	columns[constant.FieldModifiedAt] = timezone.Now()
	columns[constant.FieldModifiedBy] = username

	return columns
}

func collectColumns(val reflect.Value, columns map[string]any, skipZero bool) {
	typ := val.Type()

	for index := range val.NumField() {
		field := typ.Field(index)
		value := val.Field(index)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			collectColumns(value, columns, skipZero)

			continue
		}

		name := field.Tag.Get("db")
		if name == "" || name == "-" || (skipZero && value.IsZero()) {
			continue
		}

		columns[name] = value.Interface()
	}
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return FilterByField(fieldID, id, table)
}

// FilterByField matches a single column, typically a natural key such as a room number.
func FilterByField(field string, value any, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a stable key from pagination params and the filter values.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	_, args := filter.GetWhereClause()

	keys := make([]string, 0, len(args))
	for key := range args {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	parts := []string{
		strconv.Itoa(params.Page),
		strconv.Itoa(params.Limit),
		params.SortBy,
		params.SortDir,
	}

	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", key, args[key]))
	}

	return BuildCacheKey(prefix, parts...)
}

// InvalidateCaches clears every key stored under prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// Paginate returns one page of items. A non-positive limit returns everything.
func Paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		return items
	}

	page = max(page, 1)

	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}

	end := min(start+limit, len(items))

	return items[start:end]
}

// SortByKey orders items by key, ascending unless dir is DESC. The input is not modified.
func SortByKey[T any](items []T, key func(T) string, dir string) []T {
	sorted := slices.Clone(items)

	slices.SortStableFunc(sorted, func(a, b T) int {
		if strings.EqualFold(dir, dto.SortDirDesc) {
			return strings.Compare(key(b), key(a))
		}

		return strings.Compare(key(a), key(b))
	})

	return sorted
}
