// shortcode генерирует кандидатов в короткие коды ссылок.
//
// Генератор не гарантирует глобальной уникальности: её обеспечивает
// вызывающая сторона повторной генерацией при коллизии в хранилище.
package shortcode

import "math/rand/v2"

const (
	// MinLength — минимальная длина кода.
	MinLength = 6
	// MaxLength — максимальная длина кода.
	MaxLength = 8
	// Alphabet — 62 допустимых символа кода.
	Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Generator выдаёт очередной кандидат в короткий код.
type Generator interface {
	Generate() string
}

// Random — генератор на некриптографическом источнике math/rand/v2.
// Длина кода равномерно выбирается из [MinLength, MaxLength],
// каждый символ — равномерно из Alphabet. Безопасен для конкурентного использования.
type Random struct{}

// Generate возвращает случайный код.
func (Random) Generate() string {
	n := MinLength + rand.IntN(MaxLength-MinLength+1)

	b := make([]byte, n)
	for i := range b {
		b[i] = Alphabet[rand.IntN(len(Alphabet))]
	}

	return string(b)
}

var _ Generator = Random{}
