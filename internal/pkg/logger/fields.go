package logger

import (
	"go.uber.org/zap"
)

// Field type alias for better abstraction
type Field = zap.Field

// String constructs a field that carries a string value
func String(key, val string) Field {
	return zap.String(key, val)
}

// Err constructs a field that carries an error
func Err(err error) Field {
	return zap.Error(err)
}

// Int constructs a field that carries an int value
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Int64 constructs a field that carries an int64 value
func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

// Any constructs a field that carries an arbitrary value
func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

// Planner specific keys, so log queries can rely on one spelling

// RequestID tags an entry with the request it belongs to
func RequestID(id string) Field {
	return zap.String("request_id", id)
}

// DatasetID tags an entry with a dataset
func DatasetID(id string) Field {
	return zap.String("dataset_id", id)
}

// Filename tags an entry with the uploaded file name
func Filename(name string) Field {
	return zap.String("filename", name)
}
