package models_test

import (
	"errors"

	"github.com/budtrack/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestCreateUser() {
	user := suite.createTestUser(models.User{Name: "alice", Email: "alice@example.com", Password: "hunter2"})

	suite.Assert().NotEqual(uuid.Nil, user.ID)
	suite.Assert().False(user.CreatedAt.IsZero())
	suite.Assert().False(user.UpdatedAt.IsZero())
}

func (suite *TestSuiteStandard) TestUserTrimsWhitespace() {
	user := suite.createTestUser(models.User{Name: " alice ", Email: " alice@example.com ", Password: "hunter2"})

	suite.Assert().Equal("alice", user.Name)
	suite.Assert().Equal("alice@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserNameNotUnique() {
	_ = suite.createTestUser(models.User{Name: "alice", Email: "alice@example.com", Password: "hunter2"})

	err := models.DB.Create(&models.User{Name: "alice", Email: "other@example.com", Password: "hunter2"}).Error
	suite.Assert().True(errors.Is(err, models.ErrUserNameNotUnique), "wrong error: %v", err)
}

func (suite *TestSuiteStandard) TestUserEmailNotUnique() {
	_ = suite.createTestUser(models.User{Name: "alice", Email: "alice@example.com", Password: "hunter2"})

	err := models.DB.Create(&models.User{Name: "bob", Email: "alice@example.com", Password: "hunter2"}).Error
	suite.Assert().True(errors.Is(err, models.ErrUserEmailNotUnique), "wrong error: %v", err)
}

func (suite *TestSuiteStandard) TestUserByName() {
	created := suite.createTestUser(models.User{Name: "alice", Email: "alice@example.com", Password: "hunter2"})

	user, err := models.UserByName(models.DB, "alice")
	suite.Assert().Nil(err)
	suite.Assert().Equal(created.ID, user.ID)
}

func (suite *TestSuiteStandard) TestUserByNameNotFound() {
	_, err := models.UserByName(models.DB, "nobody")

	suite.Assert().True(errors.Is(err, models.ErrResourceNotFound), "wrong error: %v", err)
	suite.Assert().Equal("there is no user matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestUserGeneralDBError() {
	suite.CloseDB()

	_, err := models.UserByName(models.DB, "alice")
	suite.Assert().True(errors.Is(err, models.ErrGeneral), "wrong error: %v", err)
}
