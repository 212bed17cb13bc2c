package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/event"
	"frontdesk/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	errRequiredFilter = errors.New("required filter")

	// ErrNotFound is returned when a keyed update or delete matched no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate wraps unique violations, e.g. a second room with the same number.
	ErrDuplicate = errors.New("record already exists")
	// ErrReference wraps foreign key violations.
	ErrReference = errors.New("referenced record does not exist")
)

// classify tags constraint violations so services can answer 409 or 400 without parsing driver errors.
func classify(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeUniqueViolation:
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case constant.PqErrorCodeFkViolation:
		return fmt.Errorf("%w: %w", ErrReference, err)
	default:
		return err
	}
}

type column struct {
	name  string
	table string
	alias string
}

func (c column) expr() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	default:
		return c.table + "." + c.name
	}
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entitas       string
	primaryColumn string
	columns       []column
	join          string
	hook          event.Hook
	InsertColumns []string
}

func NewRepository[T any](entitasName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel, hook event.Hook) Repository[T] {
	var zero T

	reflectType := reflect.TypeOf(zero)
	columns, insertColumns := getColumns(tableName, reflectType)

	valueOf := reflect.ValueOf(zero)
	method := valueOf.MethodByName("GetJoinQuery")
	joinQueryStr := ""

	if method.IsValid() {
		joinQuery := method.Call([]reflect.Value{})

		if len(joinQuery) > 0 {
			joinQueryStr = joinQuery[0].String()
		}
	}

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		columns:       columns,
		join:          joinQueryStr,
		hook:          hook,
		InsertColumns: insertColumns,
	}
}

func (repo *Repository[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+repo.entitas+"."+operation)
}

func (repo *Repository[T]) writeFailed(ctx context.Context, operation string, args map[string]any, err error) {
	if repo.hook == nil {
		return
	}

	key := ""
	if len(args) > 0 {
		key = fmt.Sprintf("%v", args)
	}

	repo.hook.WriteFailed(ctx, event.NewWriteFailure(repo.table, operation, key, err))
}

func (repo *Repository[T]) insert(ctx context.Context, exec execer, model T) error {
	ctx, scope := repo.scope(ctx, "insert")
	defer scope.End()

	query := repo.insertQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := exec.NamedExecContext(ctx, query, model)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)
		repo.writeFailed(ctx, event.OperationInsert, nil, err)

		return fmt.Errorf("failed to insert data (%s): %w", repo.entitas, classify(err))
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.scope(ctx, "Insert")
	defer scope.End()

	return repo.insert(ctx, repo.db.Write, model) //nolint:wrapcheck
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	ctx, scope := repo.scope(ctx, "InsertTx")
	defer scope.End()

	return repo.insert(ctx, sqltx, model) //nolint:wrapcheck
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.scope(ctx, "Exist")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return false, errRequiredFilter
	}

	exist := false
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)

	err := repo.read(ctx, scope, query, args, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &exist, args)
	})
	if err != nil {
		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entitas, err)
	}

	return exist, nil
}

// Get returns the zero value of T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	var model T

	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.getSelectQuery(columns...), repo.table, repo.join, where)

	err := repo.read(ctx, scope, query, args, func(stmt *sqlx.NamedStmt) error {
		err := stmt.GetContext(ctx, &model, args)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}

		return err //nolint:wrapcheck
	})
	if err != nil {
		return model, fmt.Errorf("failed to get data (%s): %w", repo.entitas, err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	pagination := paginate(params, args)

	query := strings.Join(slices.DeleteFunc([]string{
		"SELECT", repo.getSelectQuery(columns...),
		"FROM", repo.table, repo.join, where,
		repo.orderBy(params), pagination,
	}, func(part string) bool { return strings.TrimSpace(part) == "" }), " ")

	models := []T{}

	err := repo.read(ctx, scope, query, args, func(stmt *sqlx.NamedStmt) error {
		return stmt.SelectContext(ctx, &models, args)
	})
	if err != nil {
		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entitas, err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.scope(ctx, "Count")
	defer scope.End()

	var count int

	where, args := repo.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)

	err := repo.read(ctx, scope, query, args, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &count, args)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count data (%s): %w", repo.entitas, err)
	}

	return count, nil
}

// read prepares query against the read replica and hands the statement to scan.
func (repo *Repository[T]) read(ctx context.Context, scope otel.Scope, query string, args map[string]any, scan func(*sqlx.NamedStmt) error) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	if err = scan(stmt); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return err
	}

	return nil
}

func paginate(params dto.QueryParams, args map[string]any) string {
	switch {
	case params.Page > 0 && params.Limit > 0:
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit

		return "LIMIT :limit OFFSET :offset"
	case params.Limit > 0:
		args["limit"] = params.Limit

		return "LIMIT :limit"
	default:
		return ""
	}
}

// orderBy only honours known columns; anything else falls back to insertion order.
func (repo *Repository[T]) orderBy(params dto.QueryParams) string {
	known := slices.ContainsFunc(repo.columns, func(c column) bool {
		return c.table == repo.table && c.alias == "" && c.name == params.SortBy
	})
	if !known {
		return ""
	}

	direction := "ASC"
	if strings.EqualFold(params.SortDir, "desc") {
		direction = "DESC"
	}

	return fmt.Sprintf("ORDER BY %s.%s %s", repo.table, pq.QuoteIdentifier(params.SortBy), direction)
}

func (repo *Repository[T]) delete(ctx context.Context, exec execer, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "delete")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return errRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s %s", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := exec.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)
		repo.writeFailed(ctx, event.OperationDelete, args, err)

		return fmt.Errorf("failed to delete data (%s): %w", repo.entitas, err)
	}

	return affectedOrNotFound(result)
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "Delete")
	defer scope.End()

	return repo.delete(ctx, repo.db.Write, filter) //nolint:wrapcheck
}

func (repo *Repository[T]) DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "DeleteTx")
	defer scope.End()

	return repo.delete(ctx, sqltx, filter) //nolint:wrapcheck
}

func (repo *Repository[T]) update(ctx context.Context, exec execer, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "update")
	defer scope.End()

	updateField := []string{}

	for col := range maps.Keys(mod) {
		updateField = append(updateField, fmt.Sprintf("%s = :%s", col, col))
	}

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return errRequiredFilter
	}

	filterArgs := maps.Clone(args)
	updateQuery := strings.Join(updateField, ", ")
	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, updateQuery, where)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	maps.Copy(args, mod)

	result, err := exec.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)
		repo.writeFailed(ctx, event.OperationUpdate, filterArgs, err)

		return fmt.Errorf("failed to update data (%s): %w", repo.entitas, classify(err))
	}

	return affectedOrNotFound(result)
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "Update")
	defer scope.End()

	return repo.update(ctx, repo.db.Write, mod, filter) //nolint:wrapcheck
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "UpdateTx")
	defer scope.End()

	return repo.update(ctx, sqltx, mod, filter) //nolint:wrapcheck
}

func (repo *Repository[T]) InsertBulk(ctx context.Context, models []T) error {
	ctx, scope := repo.scope(ctx, "InsertBulk")
	defer scope.End()

	return repo.insertBulk(ctx, repo.db.Write, models)
}

func (repo *Repository[T]) InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []T) error {
	ctx, scope := repo.scope(ctx, "InsertBulkTx")
	defer scope.End()

	return repo.insertBulk(ctx, sqltx, models)
}

func (repo *Repository[T]) insertBulk(ctx context.Context, exec execer, models []T) error {
	ctx, scope := repo.scope(ctx, "insertBulk")
	defer scope.End()

	if len(models) == 0 {
		return nil
	}

	query := repo.insertQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := exec.NamedExecContext(ctx, query, models)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)
		repo.writeFailed(ctx, event.OperationInsert, nil, err)

		return fmt.Errorf("failed to bulk insert data (%s): %w", repo.entitas, classify(err))
	}

	return nil
}

// List returns the whole collection without pagination.
func (repo *Repository[T]) List(ctx context.Context) ([]T, error) {
	ctx, scope := repo.scope(ctx, "List")
	defer scope.End()

	return repo.GetAll(ctx, dto.QueryParams{}, dto.FilterGroup{}) //nolint:wrapcheck
}

// Upsert inserts the model or overwrites the row that already holds conflictColumn.
func (repo *Repository[T]) Upsert(ctx context.Context, model T, conflictColumn string) error {
	ctx, scope := repo.scope(ctx, "Upsert")
	defer scope.End()

	assignments := []string{}

	for _, col := range repo.InsertColumns {
		if col == conflictColumn || col == repo.primaryColumn || col == constant.FieldCreatedAt || col == constant.FieldCreatedBy {
			continue
		}

		assignments = append(assignments, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	query := fmt.Sprintf("%s ON CONFLICT (%s) DO UPDATE SET %s", repo.insertQuery(), conflictColumn, strings.Join(assignments, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, model)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)
		repo.writeFailed(ctx, event.OperationUpsert, nil, err)

		return fmt.Errorf("failed to upsert data (%s): %w", repo.entitas, classify(err))
	}

	return nil
}

func (repo *Repository[T]) insertQuery() string {
	placeholders := make([]string, len(repo.InsertColumns))
	for i, col := range repo.InsertColumns {
		placeholders[i] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "))
}

func affectedOrNotFound(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (repo *Repository[T]) getSelectQuery(only ...string) string {
	columns := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		columns = append(columns, col.expr())
	}

	return strings.Join(columns, ", ")
}

func (repo *Repository[T]) BuildWhereClause(_ context.Context, filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)
		dbTag := field.Tag.Get("db")
		tableField := field.Tag.Get("table")
		colTag := field.Tag.Get("column")

		if tableField == "" {
			tableField = table
		}

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			col, insertCol := getColumns(table, field.Type)
			columns = append(columns, col...)
			insertColumns = append(insertColumns, insertCol...)
		}

		if dbTag == "" {
			continue
		}

		if tableField == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if colTag == "" {
			columns = append(columns, column{name: dbTag, table: tableField})
		} else {
			columns = append(columns, column{name: colTag, table: tableField, alias: dbTag})
		}
	}

	return columns, insertColumns
}
