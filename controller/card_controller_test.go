package controller

import (
	"testing"

	"github.com/Adiru352/luxmeet3.0/models"
	"github.com/Adiru352/luxmeet3.0/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestValidateCard(t *testing.T) {
	t.Run("minimal valid input gets the default theme", func(t *testing.T) {
		card, fieldErrs := ValidateCard(&models.CardInput{
			Name:  "Jo",
			Title: "CEO",
			Email: "jo@x.com",
		})

		require.Nil(t, fieldErrs)
		require.NotNil(t, card)
		assert.Equal(t, "Jo", card.Name)
		assert.Equal(t, "jo@x.com", card.Email)
		assert.Equal(t, util.DefaultPrimaryColor, card.Theme.PrimaryColor)
		assert.Equal(t, util.DefaultSecondaryColor, card.Theme.SecondaryColor)
		assert.Equal(t, util.DefaultFontFamily, card.Theme.FontFamily)
		assert.Equal(t, util.DefaultLayout, card.Theme.Layout)
	})

	t.Run("privacy defaults to everything visible", func(t *testing.T) {
		card, fieldErrs := ValidateCard(&models.CardInput{
			Name:  "Jo",
			Title: "CEO",
			Email: "jo@x.com",
		})

		require.Nil(t, fieldErrs)
		assert.True(t, card.Privacy.ShowEmail)
		assert.True(t, card.Privacy.ShowPhone)
		assert.True(t, card.Privacy.AllowIndexing)
	})

	t.Run("explicit privacy overrides the defaults", func(t *testing.T) {
		card, fieldErrs := ValidateCard(&models.CardInput{
			Name:  "Jo",
			Title: "CEO",
			Email: "jo@x.com",
			Privacy: &models.PrivacyInput{
				ShowEmail: boolPtr(false),
			},
		})

		require.Nil(t, fieldErrs)
		assert.False(t, card.Privacy.ShowEmail)
		assert.True(t, card.Privacy.ShowPhone)
	})

	t.Run("email is trimmed and lowercased", func(t *testing.T) {
		card, fieldErrs := ValidateCard(&models.CardInput{
			Name:  "Ada",
			Title: "Engineer",
			Email: "  Ada@Example.COM  ",
		})

		require.Nil(t, fieldErrs)
		assert.Equal(t, "ada@example.com", card.Email)
	})

	t.Run("rejects short name and title", func(t *testing.T) {
		_, fieldErrs := ValidateCard(&models.CardInput{
			Name:  "A",
			Title: " ",
			Email: "a@b.com",
		})

		require.NotNil(t, fieldErrs)
		assert.Contains(t, fieldErrs, "name")
		assert.Contains(t, fieldErrs, "title")
	})

	t.Run("multibyte names count runes not bytes", func(t *testing.T) {
		card, fieldErrs := ValidateCard(&models.CardInput{
			Name:  "徐伟",
			Title: "总监",
			Email: "wei@example.cn",
		})

		require.Nil(t, fieldErrs)
		assert.Equal(t, "徐伟", card.Name)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, fieldErrs := ValidateCard(&models.CardInput{
			Name:  "Jo",
			Title: "CEO",
			Email: "not-an-email",
		})

		require.NotNil(t, fieldErrs)
		assert.Contains(t, fieldErrs, "email")
	})

	t.Run("rejects relative website URL", func(t *testing.T) {
		_, fieldErrs := ValidateCard(&models.CardInput{
			Name:    "Jo",
			Title:   "CEO",
			Email:   "jo@x.com",
			Website: "example.com/about",
		})

		require.NotNil(t, fieldErrs)
		assert.Contains(t, fieldErrs, "website")
	})

	t.Run("accepts absolute website URL", func(t *testing.T) {
		card, fieldErrs := ValidateCard(&models.CardInput{
			Name:    "Jo",
			Title:   "CEO",
			Email:   "jo@x.com",
			Website: "https://example.com/about",
		})

		require.Nil(t, fieldErrs)
		assert.Equal(t, "https://example.com/about", card.Website)
	})

	t.Run("collects all field errors at once", func(t *testing.T) {
		_, fieldErrs := ValidateCard(&models.CardInput{
			Name:    "J",
			Title:   "C",
			Email:   "bad",
			Website: "also bad",
		})

		require.NotNil(t, fieldErrs)
		assert.Len(t, fieldErrs, 4)
	})
}

func TestBuildTheme(t *testing.T) {
	t.Run("partial theme keeps defaults for missing fields", func(t *testing.T) {
		fieldErrs := FieldErrors{}
		theme := buildTheme(&models.ThemeInput{PrimaryColor: "#FF0000"}, fieldErrs)

		assert.Empty(t, fieldErrs)
		assert.Equal(t, "#ff0000", theme.PrimaryColor)
		assert.Equal(t, util.DefaultSecondaryColor, theme.SecondaryColor)
		assert.Equal(t, util.DefaultFontFamily, theme.FontFamily)
		assert.Equal(t, util.DefaultLayout, theme.Layout)
	})

	t.Run("rejects malformed hex colors", func(t *testing.T) {
		for _, bad := range []string{"red", "#fff", "#12345g", "0ea5e9"} {
			fieldErrs := FieldErrors{}
			buildTheme(&models.ThemeInput{PrimaryColor: bad}, fieldErrs)
			assert.Contains(t, fieldErrs, "theme.primary_color", "input %q", bad)
		}
	})

	t.Run("rejects unknown font family", func(t *testing.T) {
		fieldErrs := FieldErrors{}
		buildTheme(&models.ThemeInput{FontFamily: "Comic Sans"}, fieldErrs)
		assert.Contains(t, fieldErrs, "theme.font_family")
	})

	t.Run("accepts every allowed font family", func(t *testing.T) {
		for _, font := range util.AllowedFontFamilies {
			fieldErrs := FieldErrors{}
			theme := buildTheme(&models.ThemeInput{FontFamily: font}, fieldErrs)
			assert.Empty(t, fieldErrs)
			assert.Equal(t, font, theme.FontFamily)
		}
	})

	t.Run("rejects unknown layout", func(t *testing.T) {
		fieldErrs := FieldErrors{}
		buildTheme(&models.ThemeInput{Layout: "brutalist"}, fieldErrs)
		assert.Contains(t, fieldErrs, "theme.layout")
	})
}

func TestFieldErrorsError(t *testing.T) {
	fieldErrs := FieldErrors{"email": "must be a valid email address"}
	assert.Equal(t, "invalid card: email: must be a valid email address", fieldErrs.Error())
}
