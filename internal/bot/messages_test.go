package bot

import (
	"testing"
	"time"

	"tg_account_bot/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCatalogCoversBothLanguages(t *testing.T) {
	hausa := messages[model.LanguageHausa]
	english := messages[model.LanguageEnglish]

	for key := range hausa {
		_, ok := english[key]
		assert.True(t, ok, "missing english text for %q", key)
	}
	for key := range english {
		_, ok := hausa[key]
		assert.True(t, ok, "missing hausa text for %q", key)
	}
}

func TestTextFallsBackToHausa(t *testing.T) {
	assert.Equal(t, messages[model.LanguageHausa]["welcome"], text("fr", "welcome"))
	assert.Equal(t, messages[model.LanguageEnglish]["welcome"],
		text(model.LanguageEnglish, "welcome"))
}

func TestFormatReceipt(t *testing.T) {
	out := formatReceipt(&model.Receipt{
		TransactionID: "TG427987",
		Type:          "Account Submission",
		Status:        "successful",
		PhoneNumber:   "+2348167757987",
		AccountCount:  2,
		Amount:        1000,
		Reference:     "TG2025060142",
		Date:          time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	})

	assert.Contains(t, out, "TG427987")
	assert.Contains(t, out, "SUCCESSFUL")
	assert.Contains(t, out, "₦1000")
	assert.Contains(t, out, "+2348167757987")
	assert.NotContains(t, out, "Bank:")
}
