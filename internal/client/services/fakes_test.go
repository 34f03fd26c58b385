package services

import (
	"context"

	"github.com/dmitrijs2005/staffview/internal/client/models"
)

// fakeClient implements api.Client for unit tests.
type fakeClient struct {
	LoginRet   models.LoginResponse
	LoginErr   error
	LogoutErr  error
	ListRet    models.EmployeeList
	ListErr    error
	LastCreds  models.Credentials
	LastPage   models.Page
	LogoutHits int
}

func (f *fakeClient) Login(_ context.Context, creds models.Credentials) (models.LoginResponse, error) {
	f.LastCreds = creds
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Logout(context.Context) error {
	f.LogoutHits++
	return f.LogoutErr
}

func (f *fakeClient) Employees(_ context.Context, page models.Page) (models.EmployeeList, error) {
	f.LastPage = page
	return f.ListRet, f.ListErr
}
