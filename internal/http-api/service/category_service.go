package service

// Category is one suggested journal category. The list is static and advisory:
// entries may carry any category string.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

var categories = []Category{
	{ID: 1, Name: "Personal"},
	{ID: 2, Name: "Work"},
	{ID: 3, Name: "Travel"},
	{ID: 4, Name: "Health"},
	{ID: 5, Name: "Finance"},
	{ID: 6, Name: "Education"},
	{ID: 7, Name: "Gratitude"},
	{ID: 8, Name: "Ideas"},
}

type CategoryService interface {
	GetAll() []Category
}

type categoryService struct{}

func NewCategoryService() CategoryService {
	return &categoryService{}
}

// GetAll returns a copy so callers cannot mutate the static list.
func (s *categoryService) GetAll() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}
