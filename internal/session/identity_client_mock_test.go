package session

import (
	"context"
	"sync"

	"github.com/heartmarshall/moodverse-backend/internal/domain"
)

var _ identityClient = &identityClientMock{}

type identityClientMock struct {
	CreateAccountFunc func(ctx context.Context, email string, password string) (*domain.Identity, error)
	SignInFunc        func(ctx context.Context, email string, password string) error
	SignOutFunc       func(ctx context.Context) error

	calls struct {
		CreateAccount []struct {
			Ctx      context.Context
			Email    string
			Password string
		}
		SignIn []struct {
			Ctx      context.Context
			Email    string
			Password string
		}
		SignOut []struct {
			Ctx context.Context
		}
	}
	lockCreateAccount sync.RWMutex
	lockSignIn        sync.RWMutex
	lockSignOut       sync.RWMutex
}

func (mock *identityClientMock) CreateAccount(ctx context.Context, email string, password string) (*domain.Identity, error) {
	if mock.CreateAccountFunc == nil {
		panic("identityClientMock.CreateAccountFunc: method is nil but identityClient.CreateAccount was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Email    string
		Password string
	}{
		Ctx:      ctx,
		Email:    email,
		Password: password,
	}
	mock.lockCreateAccount.Lock()
	mock.calls.CreateAccount = append(mock.calls.CreateAccount, callInfo)
	mock.lockCreateAccount.Unlock()
	return mock.CreateAccountFunc(ctx, email, password)
}

func (mock *identityClientMock) CreateAccountCalls() []struct {
	Ctx      context.Context
	Email    string
	Password string
} {
	mock.lockCreateAccount.RLock()
	calls := mock.calls.CreateAccount
	mock.lockCreateAccount.RUnlock()
	return calls
}

func (mock *identityClientMock) SignIn(ctx context.Context, email string, password string) error {
	if mock.SignInFunc == nil {
		panic("identityClientMock.SignInFunc: method is nil but identityClient.SignIn was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Email    string
		Password string
	}{
		Ctx:      ctx,
		Email:    email,
		Password: password,
	}
	mock.lockSignIn.Lock()
	mock.calls.SignIn = append(mock.calls.SignIn, callInfo)
	mock.lockSignIn.Unlock()
	return mock.SignInFunc(ctx, email, password)
}

func (mock *identityClientMock) SignInCalls() []struct {
	Ctx      context.Context
	Email    string
	Password string
} {
	mock.lockSignIn.RLock()
	calls := mock.calls.SignIn
	mock.lockSignIn.RUnlock()
	return calls
}

func (mock *identityClientMock) SignOut(ctx context.Context) error {
	if mock.SignOutFunc == nil {
		panic("identityClientMock.SignOutFunc: method is nil but identityClient.SignOut was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockSignOut.Lock()
	mock.calls.SignOut = append(mock.calls.SignOut, callInfo)
	mock.lockSignOut.Unlock()
	return mock.SignOutFunc(ctx)
}

func (mock *identityClientMock) SignOutCalls() []struct {
	Ctx context.Context
} {
	mock.lockSignOut.RLock()
	calls := mock.calls.SignOut
	mock.lockSignOut.RUnlock()
	return calls
}
