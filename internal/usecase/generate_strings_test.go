package usecase

import (
	"errors"
	"net/url"
	"testing"

	"github.com/avc-dev/random-string/internal/mocks"
	"github.com/avc-dev/random-string/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func intPtr(v int) *int {
	return &v
}

func TestParseLengthRequest(t *testing.T) {
	tests := []struct {
		name                 string
		query                string
		expectedPrintable    *int
		expectedAlphanumeric *int
	}{
		{
			name:                 "Both present",
			query:                "p=15&a=20",
			expectedPrintable:    intPtr(15),
			expectedAlphanumeric: intPtr(20),
		},
		{
			name:                 "Only printable",
			query:                "p=7",
			expectedPrintable:    intPtr(7),
			expectedAlphanumeric: nil,
		},
		{
			name:                 "Non numeric values are ignored",
			query:                "p=abc&a=1.5",
			expectedPrintable:    nil,
			expectedAlphanumeric: nil,
		},
		{
			name:                 "Out of range values are kept for clamping",
			query:                "p=-3&a=500",
			expectedPrintable:    intPtr(-3),
			expectedAlphanumeric: intPtr(500),
		},
		{
			name:                 "Empty query",
			query:                "",
			expectedPrintable:    nil,
			expectedAlphanumeric: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			req := ParseLengthRequest(query)

			assert.Equal(t, tt.expectedPrintable, req.Printable)
			assert.Equal(t, tt.expectedAlphanumeric, req.Alphanumeric)
		})
	}
}

// TestGenerateStrings_Clamping проверяет приведение длин к диапазону [1, 99]
func TestGenerateStrings_Clamping(t *testing.T) {
	tests := []struct {
		name                 string
		printable            int
		alphanumeric         int
		expectedPrintable    int
		expectedAlphanumeric int
	}{
		{name: "In range", printable: 15, alphanumeric: 20, expectedPrintable: 15, expectedAlphanumeric: 20},
		{name: "Above range", printable: 150, alphanumeric: 100, expectedPrintable: 99, expectedAlphanumeric: 99},
		{name: "Below range", printable: 0, alphanumeric: -10, expectedPrintable: 1, expectedAlphanumeric: 1},
		{name: "Bounds", printable: 1, alphanumeric: 99, expectedPrintable: 1, expectedAlphanumeric: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockGenerator := mocks.NewMockGenerator(t)
			mockGenerator.EXPECT().
				Printable(tt.expectedPrintable).
				Return("Ab3!", nil).
				Once()
			mockGenerator.EXPECT().
				Alphanumeric(tt.expectedAlphanumeric).
				Return("xyz789", nil).
				Once()

			uc := NewStringsUsecase(mockGenerator, zap.NewNop())

			// Act
			resp, err := uc.GenerateStrings(model.LengthRequest{
				Printable:    intPtr(tt.printable),
				Alphanumeric: intPtr(tt.alphanumeric),
			})

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPrintable, resp.Printable.Length)
			assert.Equal(t, tt.expectedAlphanumeric, resp.Alphanumeric.Length)
			assert.Equal(t, "Ab3!", resp.Printable.String)
			assert.Equal(t, "xyz789", resp.Alphanumeric.String)
		})
	}
}

// TestGenerateStrings_RandomDefaults проверяет выбор случайной длины для незаданных параметров
func TestGenerateStrings_RandomDefaults(t *testing.T) {
	// Arrange
	mockGenerator := mocks.NewMockGenerator(t)
	mockGenerator.EXPECT().RandomLength().Return(17, nil).Once()
	mockGenerator.EXPECT().Printable(17).Return("aaaaaaaaaaaaaaa!a", nil).Once()
	mockGenerator.EXPECT().Alphanumeric(5).Return("bbbbb", nil).Once()

	uc := NewStringsUsecase(mockGenerator, zap.NewNop())

	// Act
	resp, err := uc.GenerateStrings(model.LengthRequest{Alphanumeric: intPtr(5)})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 17, resp.Printable.Length)
	assert.Equal(t, 5, resp.Alphanumeric.Length)
}

// TestGenerateStrings_GeneratorErrors проверяет обертывание ошибок генератора
func TestGenerateStrings_GeneratorErrors(t *testing.T) {
	generatorErr := errors.New("entropy exhausted")

	t.Run("random length failure", func(t *testing.T) {
		mockGenerator := mocks.NewMockGenerator(t)
		mockGenerator.EXPECT().RandomLength().Return(0, generatorErr).Once()

		uc := NewStringsUsecase(mockGenerator, zap.NewNop())

		_, err := uc.GenerateStrings(model.LengthRequest{})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrGenerationFailed)
		assert.ErrorIs(t, err, generatorErr)
	})

	t.Run("printable failure", func(t *testing.T) {
		mockGenerator := mocks.NewMockGenerator(t)
		mockGenerator.EXPECT().Printable(10).Return("", generatorErr).Once()

		uc := NewStringsUsecase(mockGenerator, zap.NewNop())

		_, err := uc.GenerateStrings(model.LengthRequest{Printable: intPtr(10), Alphanumeric: intPtr(10)})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrGenerationFailed)
		mockGenerator.AssertNotCalled(t, "Alphanumeric")
	})

	t.Run("alphanumeric failure", func(t *testing.T) {
		mockGenerator := mocks.NewMockGenerator(t)
		mockGenerator.EXPECT().Printable(10).Return("abc", nil).Once()
		mockGenerator.EXPECT().Alphanumeric(10).Return("", generatorErr).Once()

		uc := NewStringsUsecase(mockGenerator, zap.NewNop())

		_, err := uc.GenerateStrings(model.LengthRequest{Printable: intPtr(10), Alphanumeric: intPtr(10)})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrGenerationFailed)
	})
}
