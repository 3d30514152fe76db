package models

// All returns every model whose table is created at start-up
func All() []interface{} {
	return []interface{}{
		&User{},
	}
}
