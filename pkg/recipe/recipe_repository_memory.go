package recipe

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"household-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InMemoryRecipeRepository is a map-backed RecipeRepository used by tests and
// local runs without a database.
type InMemoryRecipeRepository struct {
	mu      sync.RWMutex
	recipes map[uuid.UUID]*entities.Recipe
}

func NewInMemoryRecipeRepository() *InMemoryRecipeRepository {
	return &InMemoryRecipeRepository{recipes: make(map[uuid.UUID]*entities.Recipe)}
}

func (r *InMemoryRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if recipe.ID == uuid.Nil {
		recipe.ID = uuid.New()
	}
	now := time.Now()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now
	stored := *recipe
	r.recipes[recipe.ID] = &stored
	return nil
}

func (r *InMemoryRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	recipe, ok := r.recipes[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *recipe
	return &copied, nil
}

func (r *InMemoryRecipeRepository) UpdateRecipe(_ context.Context, recipe *entities.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.recipes[recipe.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	recipe.CreatedAt = existing.CreatedAt
	recipe.UpdatedAt = time.Now()
	stored := *recipe
	r.recipes[recipe.ID] = &stored
	return nil
}

func (r *InMemoryRecipeRepository) DeleteRecipe(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	delete(r.recipes, parsed)
	return nil
}

func (r *InMemoryRecipeRepository) GetRecipes(_ context.Context) ([]*entities.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recipes := make([]*entities.Recipe, 0, len(r.recipes))
	for _, recipe := range r.recipes {
		copied := *recipe
		recipes = append(recipes, &copied)
	}
	sort.SliceStable(recipes, func(i, j int) bool {
		return recipes[i].CreatedAt.After(recipes[j].CreatedAt)
	})
	return recipes, nil
}

func (r *InMemoryRecipeRepository) SearchByName(ctx context.Context, name string) ([]*entities.Recipe, error) {
	all, err := r.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(name)
	var recipes []*entities.Recipe
	for _, recipe := range all {
		if strings.Contains(strings.ToLower(recipe.Name), needle) {
			recipes = append(recipes, recipe)
		}
	}
	return recipes, nil
}

func (r *InMemoryRecipeRepository) FindByTag(ctx context.Context, tag string) ([]*entities.Recipe, error) {
	all, err := r.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}
	var recipes []*entities.Recipe
	for _, recipe := range all {
		for _, t := range recipe.Tags {
			if t == tag {
				recipes = append(recipes, recipe)
				break
			}
		}
	}
	return recipes, nil
}
