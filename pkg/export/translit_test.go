package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransliterateCyrillic(t *testing.T) {
	assert.Equal(t, "Ivanov Ivan", Transliterate("Иванов Иван"))
	assert.Equal(t, "Kurs po programmirovaniyu", Transliterate("Курс по программированию"))
	assert.Equal(t, "Shchuka", Transliterate("Щука"))
}

func TestTransliterateLeavesLatinUntouched(t *testing.T) {
	assert.Equal(t, "Go 1.21, 100%", Transliterate("Go 1.21, 100%"))
}

func TestTransliterateDropsSigns(t *testing.T) {
	assert.Equal(t, "obekt", Transliterate("объект"))
}
