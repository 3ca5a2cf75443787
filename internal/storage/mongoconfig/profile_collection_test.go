package mongoconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestBuildProfileSetFields_Nil(t *testing.T) {
	assert.Empty(t, buildProfileSetFields(nil))
}

func TestBuildProfileSetFields_Empty(t *testing.T) {
	update := &ProfileUpdate{}
	assert.True(t, update.IsEmpty())
	assert.Empty(t, buildProfileSetFields(update))
}

func TestBuildProfileSetFields_OnlyProvidedFields(t *testing.T) {
	update := &ProfileUpdate{
		Currency:  strPtr("€"),
		Onboarded: boolPtr(true),
	}

	assert.False(t, update.IsEmpty())
	assert.Equal(t, bson.M{
		"currency":  "€",
		"onboarded": true,
	}, buildProfileSetFields(update))
}

func TestBuildProfileSetFields_AllFields(t *testing.T) {
	update := &ProfileUpdate{
		Name:       strPtr("Alex"),
		Currency:   strPtr("£"),
		DarkMode:   boolPtr(true),
		Categories: []string{"Food", "Rent"},
		Onboarded:  boolPtr(false),
	}

	assert.Equal(t, bson.M{
		"name":       "Alex",
		"currency":   "£",
		"dark_mode":  true,
		"categories": []string{"Food", "Rent"},
		"onboarded":  false,
	}, buildProfileSetFields(update))
}

func TestBuildProfileSetFields_FalseValuesStillSet(t *testing.T) {
	// A provided false is a real update, not an omission.
	update := &ProfileUpdate{DarkMode: boolPtr(false)}

	assert.Equal(t, bson.M{"dark_mode": false}, buildProfileSetFields(update))
}
