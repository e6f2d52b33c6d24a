package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-cred-vault/internal/mock"
	"github.com/MKhiriev/go-cred-vault/internal/service"
	"github.com/MKhiriev/go-cred-vault/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthModelUnderTest(t *testing.T) (authModel, *mock.MockClientAuthService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	return newAuthModel(context.Background(), auth), auth
}

func TestAuthModel_WelcomeNavigation(t *testing.T) {
	m, _ := newAuthModelUnderTest(t)

	updated, _ := m.Update(keyPress("enter"))
	m = updated.(authModel)
	assert.Equal(t, authScreenLogin, m.screen)

	updated, _ = m.Update(keyPress("esc"))
	m = updated.(authModel)
	assert.Equal(t, authScreenWelcome, m.screen)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(authModel)
	updated, _ = m.Update(keyPress("enter"))
	m = updated.(authModel)
	assert.Equal(t, authScreenRegister, m.screen)
}

func TestAuthModel_Login_Success(t *testing.T) {
	m, auth := newAuthModelUnderTest(t)
	m.screen = authScreenLogin
	m.login.inputs[0].SetValue("ivan")
	m.login.inputs[1].SetValue("secret password")

	auth.EXPECT().Login(gomock.Any(), "ivan", "secret password").
		Return(models.Token{UserID: 42}, nil)

	updated, cmd := m.Update(keyPress("enter"))
	m = updated.(authModel)
	require.NotNil(t, cmd)
	assert.True(t, m.login.submitting)

	updated, quit := m.Update(cmd())
	m = updated.(authModel)

	require.NotNil(t, quit)
	assert.True(t, m.done)
	assert.Equal(t, int64(42), m.result.UserID)
}

func TestAuthModel_Login_WrongPassword(t *testing.T) {
	m, auth := newAuthModelUnderTest(t)
	m.screen = authScreenLogin
	m.login.inputs[0].SetValue("ivan")
	m.login.inputs[1].SetValue("wrong")

	auth.EXPECT().Login(gomock.Any(), "ivan", "wrong").
		Return(models.Token{}, service.ErrUnauthorized)

	updated, cmd := m.Update(keyPress("enter"))
	m = updated.(authModel)
	require.NotNil(t, cmd)

	updated, _ = m.Update(cmd())
	m = updated.(authModel)

	assert.False(t, m.done)
	assert.False(t, m.login.submitting)
	assert.NotEmpty(t, m.login.errMsg)
	assert.Equal(t, authScreenLogin, m.screen)
}

func TestAuthModel_Login_EmptyFields(t *testing.T) {
	m, _ := newAuthModelUnderTest(t)
	m.screen = authScreenLogin

	updated, cmd := m.Update(keyPress("enter"))
	m = updated.(authModel)

	assert.Nil(t, cmd)
	assert.Equal(t, "Логин и пароль обязательны", m.login.errMsg)
}

func TestAuthModel_Register_Success(t *testing.T) {
	m, auth := newAuthModelUnderTest(t)
	m.screen = authScreenRegister
	m.register.inputs[0].SetValue("ivan")
	m.register.inputs[1].SetValue("secret password")
	m.register.inputs[2].SetValue("Иван")

	auth.EXPECT().Register(gomock.Any(), "ivan", "secret password", "Иван").
		Return(models.Token{UserID: 7}, nil)

	updated, cmd := m.Update(keyPress("enter"))
	m = updated.(authModel)
	require.NotNil(t, cmd)

	updated, _ = m.Update(cmd())
	m = updated.(authModel)

	assert.True(t, m.done)
	assert.Equal(t, int64(7), m.result.UserID)
}

func TestAuthModel_CtrlCQuits(t *testing.T) {
	m, _ := newAuthModelUnderTest(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(authModel)

	require.NotNil(t, cmd)
	assert.True(t, m.quitByUser)
	assert.False(t, m.done)
}
