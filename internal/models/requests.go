package models

// CreateAccountRequest is the body of POST /account.
type CreateAccountRequest struct {
	UserID   string `json:"userID" validate:"required,min=8,max=20,hangulalnum"`
	Password string `json:"password" validate:"required,min=6,max=20"`
	Email    string `json:"email" validate:"required,email"`
}

// DeleteAccountRequest is the body of DELETE /account.
type DeleteAccountRequest struct {
	UserID   string `json:"userID" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateCharacterRequest is the body of POST /character.
type CreateCharacterRequest struct {
	UserID string `json:"userID" validate:"required"`
	Name   string `json:"name" validate:"required,min=2,max=10,hangulalnum"`
}

// DeleteCharacterRequest is the body of DELETE /character.
type DeleteCharacterRequest struct {
	UserID   string `json:"userID" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// CharacterNameRequest carries the :name path parameter of GET /character/:name.
type CharacterNameRequest struct {
	Name string `validate:"required"`
}

// CreateItemRequest is the body of POST /item.
type CreateItemRequest struct {
	Code  int        `json:"code" validate:"required,gt=0"`
	Name  string     `json:"name" validate:"required,min=1,max=20,hangulalnumspace"`
	Stats *ItemStats `json:"stats" validate:"required"`
	Price int        `json:"price" validate:"required,gt=0"`
}

// Item builds the catalog entry described by the request.
func (r CreateItemRequest) Item() *Item {
	item := &Item{
		Code:  r.Code,
		Name:  r.Name,
		Price: r.Price,
	}
	if r.Stats != nil {
		item.Stats = *r.Stats
	}
	return item
}

// ItemCodeRequest identifies an item by code, either from the DELETE /item body
// or from the :code path parameter.
type ItemCodeRequest struct {
	Code int `json:"code" validate:"required,gt=0"`
}

// UpdateItemRequest is the body of PATCH /item/:code. Code comes from the path;
// every other field is optional.
type UpdateItemRequest struct {
	Code  int        `json:"-" validate:"required,gt=0"`
	Name  *string    `json:"name" validate:"omitnil,min=1,max=20,hangulalnumspace"`
	Stats *ItemStats `json:"stats" validate:"omitnil"`
	Price *int       `json:"price" validate:"omitnil,gt=0"`
}

// Patch returns the fields the client supplied.
func (r UpdateItemRequest) Patch() ItemPatch {
	return ItemPatch{
		Name:  r.Name,
		Stats: r.Stats,
		Price: r.Price,
	}
}
