package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindDisplayBookingForm, KindOf("display_booking_form"))
	assert.Equal(t, KindSubmitBookingRequest, KindOf("submit_booking_request"))
	assert.Equal(t, KindUnknown, KindOf("send_email"))
	assert.Equal(t, KindUnknown, KindOf(""))
}

func TestDeclarations(t *testing.T) {
	decls := Declarations()
	require.Len(t, decls, 2)

	byName := map[string]any{}
	for _, d := range decls {
		require.NotNil(t, d.Function)
		byName[d.Function.Name] = d.Function.Parameters
	}
	require.Contains(t, byName, DisplayBookingForm)
	require.Contains(t, byName, SubmitBookingRequest)

	params, ok := byName[SubmitBookingRequest].(map[string]any)
	require.True(t, ok)
	required, ok := params["required"].([]string)
	require.True(t, ok)
	assert.Len(t, required, 7)
	assert.Contains(t, required, "customer_email")
}

func TestPrefillDestination(t *testing.T) {
	assert.Equal(t, "Goa", PrefillDestination(map[string]any{"prefill_destination": "Goa"}))
	assert.Equal(t, "", PrefillDestination(map[string]any{}))
	assert.Equal(t, "", PrefillDestination(map[string]any{"prefill_destination": 42}))
}

func TestDecodeBookingRequest(t *testing.T) {
	args := map[string]any{
		"destination":     "Goa",
		"duration":        "5 days",
		"package_type":    "Standard",
		"travel_date":     "2026-09-15",
		"customer_name":   "Asha Rao",
		"customer_mobile": "+91 9876543210",
		"customer_email":  "asha@example.com",
	}

	req, err := DecodeBookingRequest(args)
	require.NoError(t, err)
	assert.Equal(t, "Goa", req.Destination)
	assert.Equal(t, "Standard", req.PackageType)
	assert.Equal(t, "asha@example.com", req.CustomerEmail)
}

func TestDecodeBookingRequestMissingFields(t *testing.T) {
	_, err := DecodeBookingRequest(map[string]any{"destination": "Goa"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customer_email")
	assert.Contains(t, err.Error(), "travel_date")
}

func TestDecodeBookingRequestEmptyValueIsMissing(t *testing.T) {
	args := map[string]any{
		"destination":     "Goa",
		"duration":        "5 days",
		"package_type":    "Standard",
		"travel_date":     "2026-09-15",
		"customer_name":   "",
		"customer_mobile": "+91 9876543210",
		"customer_email":  "asha@example.com",
	}
	_, err := DecodeBookingRequest(args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customer_name")
}
