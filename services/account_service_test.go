package services

import (
	"context"
	"testing"

	"fitnessmap/models"
	"fitnessmap/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestAuthService_RegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testSecret)
	ctx := context.Background()

	user, err := auth.Register(ctx, " Ana@Example.com ", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.NotEqual(t, "hunter22", user.Password)

	tok, err := auth.Login(ctx, "ana@example.com", "hunter22")
	require.NoError(t, err)
	claims, err := utils.ParseJWT(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, err = auth.Login(ctx, "ana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RegisterRejects(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testSecret)
	ctx := context.Background()

	_, err := auth.Register(ctx, "ana@example.com", "12345")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = auth.Register(ctx, "ana@example.com", "hunter22")
	require.NoError(t, err)
	_, err = auth.Register(ctx, "ANA@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_ChangeEmailAndPassword(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testSecret)
	users := NewUserService(db, auth)
	ctx := context.Background()

	ana, err := auth.Register(ctx, "ana@example.com", "hunter22")
	require.NoError(t, err)
	_, err = auth.Register(ctx, "bo@example.com", "hunter22")
	require.NoError(t, err)

	assert.ErrorIs(t, users.ChangeEmail(ctx, ana.ID, "wrong", "new@example.com"), ErrInvalidCredentials)
	assert.ErrorIs(t, users.ChangeEmail(ctx, ana.ID, "hunter22", "bo@example.com"), ErrEmailTaken)
	require.NoError(t, users.ChangeEmail(ctx, ana.ID, "hunter22", "new@example.com"))

	assert.ErrorIs(t, users.ChangePassword(ctx, ana.ID, "hunter22", "abc"), ErrWeakPassword)
	require.NoError(t, users.ChangePassword(ctx, ana.ID, "hunter22", "correcthorse"))

	_, err = auth.Login(ctx, "new@example.com", "correcthorse")
	assert.NoError(t, err)
}

func TestUserService_DeleteAccount(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testSecret)
	users := NewUserService(db, auth)
	ctx := context.Background()

	ana, err := auth.Register(ctx, "ana@example.com", "hunter22")
	require.NoError(t, err)

	svc := NewFitnessService(NewGormProfileStore(db), NewGoalService(db), NewAlertBus(db, nil, testLogger()), nil, nil, testLogger())
	_, err = svc.Submit(ctx, ana.ID, validForm())
	require.NoError(t, err)

	assert.ErrorIs(t, users.DeleteAccount(ctx, ana.ID, "nope"), ErrInvalidCredentials)
	require.NoError(t, users.DeleteAccount(ctx, ana.ID, "hunter22"))

	_, err = users.FindByID(ctx, ana.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	var n int64
	db.Model(&models.FitnessProfile{}).Where("user_id = ?", ana.ID).Count(&n)
	assert.Zero(t, n)
	db.Model(&models.DailyGoal{}).Unscoped().Where("user_id = ?", ana.ID).Count(&n)
	assert.Zero(t, n)

	// the address can be reused
	_, err = auth.Register(ctx, "ana@example.com", "hunter22")
	assert.NoError(t, err)
}

func TestGoalService_ManualOverride(t *testing.T) {
	db := newTestDB(t)
	goals := NewGoalService(db)
	ctx := context.Background()

	g, err := goals.Get(ctx, 9)
	require.NoError(t, err)
	assert.Zero(t, g.Calories)

	require.NoError(t, goals.Update(ctx, 9, GoalInput{Calories: 2100, Protein: 150, Carbs: 200, Fat: 70}))
	require.NoError(t, goals.Update(ctx, 9, GoalInput{Calories: 2000, Protein: 150, Carbs: 180, Fat: 70}))

	g, err = goals.Get(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, g.Calories)
	assert.Equal(t, models.GoalSourceManual, g.Source)

	var n int64
	db.Model(&models.DailyGoal{}).Where("user_id = ?", 9).Count(&n)
	assert.Equal(t, int64(1), n)
}
