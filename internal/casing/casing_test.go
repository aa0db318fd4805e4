package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnake(t *testing.T) {
	cases := map[string]string{
		"employeeName":      "employee_name",
		"nipNipp":           "nip_nipp",
		"regionId":          "region_id",
		"isAccident":        "is_accident",
		"HTTPStatus":        "http_status",
		"userID":            "user_id",
		"address2":          "address2",
		"address2Line":      "address2_line",
		"already_snake":     "already_snake",
		"":                  "",
		"x":                 "x",
		"employeePicture":   "employee_picture",
		"childrenBirthdate": "children_birthdate",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToSnake(in), "ToSnake(%q)", in)
	}
}

func TestToCamel(t *testing.T) {
	cases := map[string]string{
		"employee_name":  "employeeName",
		"nip_nipp":       "nipNipp",
		"region_id":      "regionId",
		"alreadyCamel":   "alreadyCamel",
		"_private_field": "_privateField",
		"trailing_":      "trailing_",
		"double__under":  "doubleUnder",
		"id":             "id",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToCamel(in), "ToCamel(%q)", in)
	}
}

func TestRoundTrip(t *testing.T) {
	keys := []string{
		"employeeName", "nipNipp", "regionId", "causeOfDeath", "lastPosition",
		"isAccident", "partnerPhoneNumber", "isAlive", "subdistrictId", "waliRelation",
		"childrenBirthdate", "index", "postalCode", "businessName", "latitude",
	}
	for _, k := range keys {
		assert.Equal(t, k, ToCamel(ToSnake(k)), "round trip of %q", k)
	}
}

func TestToCamelIdempotentOnCamel(t *testing.T) {
	for _, k := range []string{"employeeName", "regionId", "x"} {
		assert.Equal(t, k, ToCamel(ToCamel(k)))
	}
}

func TestSnakeKeys_Recursive(t *testing.T) {
	in := map[string]any{
		"employeeName": "Budi",
		"regionId":     float64(5),
		"homeMembers": []any{
			map[string]any{"childrenName": "Ani", "isAlive": true},
			"leaf",
		},
		"partner": map[string]any{"partnerName": "Siti"},
		"photo":   nil,
	}

	got := SnakeKeys(in).(map[string]any)

	assert.Equal(t, "Budi", got["employee_name"])
	assert.Equal(t, float64(5), got["region_id"])
	assert.Nil(t, got["photo"])
	members := got["home_members"].([]any)
	assert.Equal(t, map[string]any{"children_name": "Ani", "is_alive": true}, members[0])
	assert.Equal(t, "leaf", members[1])
	assert.Equal(t, map[string]any{"partner_name": "Siti"}, got["partner"])
}

func TestCamelKeys_LeavesPassThrough(t *testing.T) {
	assert.Equal(t, "plain", CamelKeys("plain"))
	assert.Equal(t, float64(3), CamelKeys(float64(3)))
	assert.Nil(t, CamelKeys(nil))

	got := CamelKeys([]any{map[string]any{"employee_name": "Budi"}})
	assert.Equal(t, []any{map[string]any{"employeeName": "Budi"}}, got)
}
