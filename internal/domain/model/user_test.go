package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupRequest_Validate_OK(t *testing.T) {
	req := SignupRequest{
		FullName: "Pat Hiring",
		Email:    "pat@example.com",
		Password: "secret-password",
		UserType: "employer",
	}
	assert.Nil(t, req.Validate())
}

func TestSignupRequest_Validate_Failures(t *testing.T) {
	req := SignupRequest{
		FullName: "Pat Hiring",
		Email:    "not-an-email",
		Password: "short",
		UserType: "admin",
	}
	errs := req.Validate()

	require.Len(t, errs, 3)
	assert.Equal(t, "Invalid email format", errs[0].Msg)
	assert.Equal(t, "Password must be at least 6 characters", errs[1].Msg)
	assert.Equal(t, "Invalid user type", errs[2].Msg)
}

func TestSignupRequest_Normalize_LeavesPasswordAlone(t *testing.T) {
	req := SignupRequest{
		FullName: "  Pat ",
		Email:    " PAT@Example.com ",
		Password: "  spaces kept  ",
		UserType: " employer ",
	}
	req.Normalize()

	assert.Equal(t, "Pat", req.FullName)
	assert.Equal(t, "pat@example.com", req.Email)
	assert.Equal(t, "  spaces kept  ", req.Password)
	assert.Equal(t, "employer", req.UserType)
}

func TestLoginRequest_Validate(t *testing.T) {
	ok := LoginRequest{Email: "pat@example.com", Password: "x"}
	assert.Nil(t, ok.Validate())

	bad := LoginRequest{}
	errs := bad.Validate()
	require.Len(t, errs, 2)
	assert.Equal(t, "email", errs[0].Path)
	assert.Equal(t, "password", errs[1].Path)
}

func TestUserType_Valid(t *testing.T) {
	assert.True(t, UserTypeEmployer.Valid())
	assert.True(t, UserTypeJobSeeker.Valid())
	assert.False(t, UserType("admin").Valid())
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	u := User{FullName: "Pat", Email: "pat@example.com", PasswordHash: "bcrypt-hash"}
	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "bcrypt-hash")
}
