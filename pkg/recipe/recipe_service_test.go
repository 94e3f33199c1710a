package recipe

import (
	"context"
	"testing"

	"household-backend/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type RecipeServiceSuite struct {
	suite.Suite
	repo    *InMemoryRecipeRepository
	service RecipeService
	ctx     context.Context
}

func (s *RecipeServiceSuite) SetupTest() {
	s.repo = NewInMemoryRecipeRepository()
	s.service = NewRecipeService(s.repo)
	s.ctx = context.Background()
}

func TestRecipeServiceSuite(t *testing.T) {
	suite.Run(t, new(RecipeServiceSuite))
}

func (s *RecipeServiceSuite) validCreateRequest() domain.CreateRecipeRequest {
	return domain.CreateRecipeRequest{
		Name:     "Pancakes",
		Servings: 2,
		Ingredients: []domain.IngredientRequest{
			{Name: "flour", Quantity: 100, Unit: "g"},
			{Name: "milk", Quantity: 200, Unit: "ml"},
		},
		Instructions: []string{"Mix", "Fry"},
		Tags:         []string{"breakfast"},
	}
}

func (s *RecipeServiceSuite) TestCreateRecipe() {
	s.Run("persists a valid recipe", func() {
		s.SetupTest()
		res, err := s.service.CreateRecipe(s.ctx, s.validCreateRequest())
		s.Require().NoError(err)
		s.Equal("Pancakes", res.Name)
		s.Len(res.Ingredients, 2)
	})

	s.Run("rejects an unknown measurement unit", func() {
		s.SetupTest()
		req := s.validCreateRequest()
		req.Ingredients[0].Unit = "handful"

		_, err := s.service.CreateRecipe(s.ctx, req)
		var vErr *domain.ValidationError
		s.Require().ErrorAs(err, &vErr)
		s.Require().Len(vErr.Issues, 1)
		s.Equal("unit", vErr.Issues[0].Code)
	})
}

func (s *RecipeServiceSuite) TestUpdateRecipe() {
	s.Run("keeps fields the request leaves empty", func() {
		s.SetupTest()
		created, err := s.service.CreateRecipe(s.ctx, s.validCreateRequest())
		s.Require().NoError(err)

		res, err := s.service.UpdateRecipe(s.ctx, created.ID, domain.UpdateRecipeRequest{Servings: 4})
		s.Require().NoError(err)
		s.Equal("Pancakes", res.Name)
		s.Equal(4, res.Servings)
		s.Len(res.Ingredients, 2)
	})

	s.Run("reports an unknown recipe", func() {
		s.SetupTest()
		_, err := s.service.UpdateRecipe(s.ctx, uuid.NewString(), domain.UpdateRecipeRequest{Name: "Waffles"})
		s.Require().ErrorIs(err, domain.ErrRecipeNotFound)
	})
}

func (s *RecipeServiceSuite) TestLookups() {
	s.SetupTest()
	created, err := s.service.CreateRecipe(s.ctx, s.validCreateRequest())
	s.Require().NoError(err)

	s.Run("finds by id", func() {
		res, err := s.service.GetRecipeByID(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Equal(created.Name, res.Name)
	})

	s.Run("finds by tag", func() {
		recipes, err := s.service.GetRecipesByTag(s.ctx, "breakfast")
		s.Require().NoError(err)
		s.Len(recipes, 1)
	})

	s.Run("searches by partial name", func() {
		recipes, err := s.service.SearchRecipes(s.ctx, "pan")
		s.Require().NoError(err)
		s.Len(recipes, 1)
	})

	s.Run("reports an unknown id", func() {
		_, err := s.service.GetRecipeByID(s.ctx, uuid.NewString())
		s.Require().ErrorIs(err, domain.ErrRecipeNotFound)
	})
}
