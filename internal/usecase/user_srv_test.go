package usecase

import (
	"context"
	"testing"

	"inventory-backend/internal/dto/request"
	"inventory-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllUsers(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	registerUser(t, f, "anna@example.com", "p1", "Shopkeeper")
	registerUser(t, f, "ben@example.com", "p2", "Assistant")

	list, err := f.service.User.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "success", list.Status)
	require.Len(t, list.Users, 2)

	emails := map[string]string{}
	for _, user := range list.Users {
		emails[user.Email] = user.Role
		assert.NotEmpty(t, user.ID)
		assert.NotEmpty(t, user.Name)
	}
	assert.Equal(t, "Shopkeeper", emails["anna@example.com"])
	assert.Equal(t, "Assistant", emails["ben@example.com"])
}

func TestUpdateRole(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	registerUser(t, f, "ben@example.com", "p1", "Assistant")
	user, err := f.users.FindByEmail(ctx, "ben@example.com")
	require.NoError(t, err)

	err = f.service.User.UpdateRole(ctx, user.ID.String(), &request.UpdateRoleRequest{
		Role: "Shopkeeper",
	})
	require.NoError(t, err)

	updated, err := f.users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shopkeeper", string(updated.Role))
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	f := newFixture()

	err := f.service.User.UpdateRole(context.Background(), uuid.NewString(), &request.UpdateRoleRequest{
		Role: "Admin",
	})
	require.EqualError(t, err, "Invalid role")
}

func TestUpdateRoleUnknownUser(t *testing.T) {
	f := newFixture()

	err := f.service.User.UpdateRole(context.Background(), uuid.NewString(), &request.UpdateRoleRequest{
		Role: "Assistant",
	})
	require.EqualError(t, err, "User not found")
}

func TestUpdateRoleMalformedID(t *testing.T) {
	f := newFixture()

	err := f.service.User.UpdateRole(context.Background(), "not-a-uuid", &request.UpdateRoleRequest{
		Role: "Assistant",
	})
	require.EqualError(t, err, "Invalid user ID")
}

func TestDeleteUser(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	registerUser(t, f, "anna@example.com", "p1", "Shopkeeper")
	registerUser(t, f, "ben@example.com", "p2", "Assistant")

	caller, err := f.users.FindByEmail(ctx, "anna@example.com")
	require.NoError(t, err)
	target, err := f.users.FindByEmail(ctx, "ben@example.com")
	require.NoError(t, err)

	err = f.service.User.DeleteUser(ctx, utils.SessionUser{ID: caller.ID}, target.ID.String())
	require.NoError(t, err)

	gone, err := f.users.FindByID(ctx, target.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestDeleteUserSelf(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	registerUser(t, f, "anna@example.com", "p1", "Shopkeeper")
	caller, err := f.users.FindByEmail(ctx, "anna@example.com")
	require.NoError(t, err)

	err = f.service.User.DeleteUser(ctx, utils.SessionUser{ID: caller.ID}, caller.ID.String())
	require.EqualError(t, err, "You cannot delete your own account.")

	// Still there
	still, err := f.users.FindByID(ctx, caller.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}

func TestDeleteUserUnknown(t *testing.T) {
	f := newFixture()

	err := f.service.User.DeleteUser(context.Background(),
		utils.SessionUser{ID: uuid.New()}, uuid.NewString())
	require.EqualError(t, err, "User not found")
}
