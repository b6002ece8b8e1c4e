package ptr

// Of возвращает указатель на копию значения
func Of[T any](v T) *T {
	return &v
}

// ValueOr разыменовывает указатель, для nil возвращает def
func ValueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}

	return *v
}
