// Утилитарные функции общего назначения
package utils

func StrPtr(s string) *string {
	return &s
}

// Deref возвращает значение по указателю или нулевое значение, если указатель nil.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
