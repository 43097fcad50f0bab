package identity

import (
	"context"
	"sync"

	authsvc "github.com/heartmarshall/moodverse-backend/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	LoginWithPasswordFunc func(ctx context.Context, input authsvc.LoginPasswordInput) (*authsvc.AuthResult, error)
	LogoutFunc            func(ctx context.Context) error
	RefreshFunc           func(ctx context.Context, input authsvc.RefreshInput) (*authsvc.AuthResult, error)
	RegisterFunc          func(ctx context.Context, input authsvc.RegisterInput) (*authsvc.AuthResult, error)

	calls struct {
		LoginWithPassword []struct {
			Ctx   context.Context
			Input authsvc.LoginPasswordInput
		}
		Logout []struct {
			Ctx context.Context
		}
		Refresh []struct {
			Ctx   context.Context
			Input authsvc.RefreshInput
		}
		Register []struct {
			Ctx   context.Context
			Input authsvc.RegisterInput
		}
	}
	lockLoginWithPassword sync.RWMutex
	lockLogout            sync.RWMutex
	lockRefresh           sync.RWMutex
	lockRegister          sync.RWMutex
}

func (mock *authServiceMock) LoginWithPassword(ctx context.Context, input authsvc.LoginPasswordInput) (*authsvc.AuthResult, error) {
	if mock.LoginWithPasswordFunc == nil {
		panic("authServiceMock.LoginWithPasswordFunc: method is nil but authService.LoginWithPassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.LoginPasswordInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockLoginWithPassword.Lock()
	mock.calls.LoginWithPassword = append(mock.calls.LoginWithPassword, callInfo)
	mock.lockLoginWithPassword.Unlock()
	return mock.LoginWithPasswordFunc(ctx, input)
}

func (mock *authServiceMock) LoginWithPasswordCalls() []struct {
	Ctx   context.Context
	Input authsvc.LoginPasswordInput
} {
	mock.lockLoginWithPassword.RLock()
	calls := mock.calls.LoginWithPassword
	mock.lockLoginWithPassword.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

func (mock *authServiceMock) Refresh(ctx context.Context, input authsvc.RefreshInput) (*authsvc.AuthResult, error) {
	if mock.RefreshFunc == nil {
		panic("authServiceMock.RefreshFunc: method is nil but authService.Refresh was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.RefreshInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, callInfo)
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx, input)
}

func (mock *authServiceMock) RefreshCalls() []struct {
	Ctx   context.Context
	Input authsvc.RefreshInput
} {
	mock.lockRefresh.RLock()
	calls := mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}

func (mock *authServiceMock) Register(ctx context.Context, input authsvc.RegisterInput) (*authsvc.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.RegisterInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input authsvc.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}
