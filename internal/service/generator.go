package service

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/avc-dev/random-string/internal/model"
)

const (
	// AlphanumericChars алфавит для буквенно-цифровых строк
	AlphanumericChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// SpecialChars печатные небуквенно-цифровые символы для printable строк
	SpecialChars = "!#$%*+-=?@^_"

	// MaxReplacements максимальное количество спецсимволов в printable строке
	MaxReplacements = 3

	// DefaultMinLength и DefaultMaxLength задают диапазон случайной длины по умолчанию
	DefaultMinLength = 12
	DefaultMaxLength = 30
)

// Generator генерирует криптографически случайные строки
type Generator struct {
	random io.Reader
}

// NewGenerator создает генератор на основе crypto/rand
func NewGenerator() *Generator {
	return &Generator{
		random: rand.Reader,
	}
}

// newGeneratorWithReader создает генератор с заданным источником случайности
func newGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{
		random: r,
	}
}

// Alphanumeric генерирует строку из букв и цифр заданной длины
func (g *Generator) Alphanumeric(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}
	if length > model.MaxLength {
		length = model.MaxLength
	}

	result := make([]byte, length)
	for i := range result {
		idx, err := g.intn(len(AlphanumericChars))
		if err != nil {
			return "", err
		}
		result[i] = AlphanumericChars[idx]
	}

	return string(result), nil
}

// Printable генерирует буквенно-цифровую строку, в которой от 1 до 3
// случайных позиций заменены спецсимволами
func (g *Generator) Printable(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}
	if length > model.MaxLength {
		length = model.MaxLength
	}

	base, err := g.Alphanumeric(length)
	if err != nil {
		return "", err
	}
	result := []byte(base)

	n, err := g.intn(MaxReplacements)
	if err != nil {
		return "", err
	}
	replacements := n + 1
	if replacements >= length {
		replacements = 1
	}

	for i := 0; i < replacements; i++ {
		pos, err := g.intn(length)
		if err != nil {
			return "", err
		}
		idx, err := g.intn(len(SpecialChars))
		if err != nil {
			return "", err
		}
		result[pos] = SpecialChars[idx]
	}

	return string(result), nil
}

// RandomLength возвращает случайную длину в диапазоне [DefaultMinLength, DefaultMaxLength]
func (g *Generator) RandomLength() (int, error) {
	n, err := g.intn(DefaultMaxLength - DefaultMinLength + 1)
	if err != nil {
		return 0, err
	}
	return DefaultMinLength + n, nil
}

// intn возвращает случайное число в диапазоне [0, max)
func (g *Generator) intn(max int) (int, error) {
	if max <= 0 {
		return 0, nil
	}
	n, err := rand.Int(g.random, big.NewInt(int64(max)))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return int(n.Int64()), nil
}
