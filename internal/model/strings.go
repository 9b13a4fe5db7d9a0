package model

const (
	// MinLength минимальная допустимая длина генерируемой строки
	MinLength = 1
	// MaxLength максимальная допустимая длина генерируемой строки
	MaxLength = 99
)

// ClampLength приводит длину к диапазону [MinLength, MaxLength]
func ClampLength(n int) int {
	if n > MaxLength {
		return MaxLength
	}
	if n < MinLength {
		return MinLength
	}
	return n
}

// RandomString представляет одну сгенерированную строку
type RandomString struct {
	Length int    `json:"length"`
	String string `json:"string"`
}

// Response представляет пару сгенерированных строк
type Response struct {
	Printable    RandomString `json:"printable"`
	Alphanumeric RandomString `json:"alphanumeric"`
}

// LengthRequest содержит запрошенные длины строк.
// Nil означает, что длина не задана и будет выбрана случайно.
type LengthRequest struct {
	Printable    *int
	Alphanumeric *int
}
