package evaluator

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// bindArgs converts call arguments to driver values for parameter binding.
func bindArgs(args []Object) ([]interface{}, *Error) {
	bound := make([]interface{}, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case *Integer:
			bound[i] = v.Value
		case *Float:
			bound[i] = v.Value
		case *Boolean:
			bound[i] = v.Value
		case *String:
			bound[i] = v.Value
		case *Bytes:
			bound[i] = v.Value
		case *Uuid:
			bound[i] = v.Value.String()
		case *Nil:
			bound[i] = nil
		default:
			return nil, newError("cannot bind %s as a query parameter", typeName(arg))
		}
	}
	return bound, nil
}

// columnToObject converts a scanned driver value back to an object.
func columnToObject(value interface{}) Object {
	switch v := value.(type) {
	case nil:
		return NIL
	case int64:
		return &Integer{Value: v}
	case float64:
		return &Float{Value: v}
	case bool:
		return nativeBoolToBooleanObject(v)
	case string:
		return &String{Value: v}
	case []byte:
		buf := make([]byte, len(v))
		copy(buf, v)
		return &Bytes{Value: buf}
	case time.Time:
		return &String{Value: v.Format(time.RFC3339)}
	default:
		return NIL
	}
}

func builtinDbOpen(e *Evaluator, args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	path, ok := args[0].(*String)
	if !ok {
		return newError("argument to `dbOpen` must be String, got %s", typeName(args[0]))
	}
	db, err := sql.Open("sqlite", path.Value)
	if err != nil {
		return newError("dbOpen: %v", err)
	}
	// sql.Open is lazy; ping so a bad path fails here, not on first query.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return newError("dbOpen: %v", err)
	}
	return &Database{DB: db, Path: path.Value}
}

func builtinDbExec(e *Evaluator, args ...Object) Object {
	if len(args) < 2 {
		return newError("wrong number of arguments. got=%d, want=2+", len(args))
	}
	db, ok := args[0].(*Database)
	if !ok {
		return newError("argument to `dbExec` must be Database, got %s", typeName(args[0]))
	}
	query, ok := args[1].(*String)
	if !ok {
		return newError("argument to `dbExec` must be String, got %s", typeName(args[1]))
	}
	bound, errObj := bindArgs(args[2:])
	if errObj != nil {
		return errObj
	}
	result, err := db.DB.Exec(query.Value, bound...)
	if err != nil {
		return newError("dbExec: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return newError("dbExec: %v", err)
	}
	return &Integer{Value: affected}
}

func builtinDbQuery(e *Evaluator, args ...Object) Object {
	if len(args) < 2 {
		return newError("wrong number of arguments. got=%d, want=2+", len(args))
	}
	db, ok := args[0].(*Database)
	if !ok {
		return newError("argument to `dbQuery` must be Database, got %s", typeName(args[0]))
	}
	query, ok := args[1].(*String)
	if !ok {
		return newError("argument to `dbQuery` must be String, got %s", typeName(args[1]))
	}
	bound, errObj := bindArgs(args[2:])
	if errObj != nil {
		return errObj
	}
	rows, err := db.DB.Query(query.Value, bound...)
	if err != nil {
		return newError("dbQuery: %v", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return newError("dbQuery: %v", err)
	}

	var results []Object
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return newError("dbQuery: %v", err)
		}
		row := NewDict()
		for i, col := range columns {
			row.Set(&String{Value: col}, columnToObject(values[i]))
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return newError("dbQuery: %v", err)
	}
	return &List{Elements: results}
}

func builtinDbClose(e *Evaluator, args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	db, ok := args[0].(*Database)
	if !ok {
		return newError("argument to `dbClose` must be Database, got %s", typeName(args[0]))
	}
	if err := db.DB.Close(); err != nil {
		return newError("dbClose: %v", err)
	}
	return NIL
}
