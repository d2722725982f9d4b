package domain

import (
	"time"

	"github.com/ferremax/inventory-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Age       int                `bson:"age" json:"age"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"password"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) Validate() error {
	var violations []errs.FieldViolation

	if u.Name == "" {
		violations = append(violations, errs.FieldViolation{Field: "name", Message: "Name is required"})
	}
	if u.Age == 0 {
		violations = append(violations, errs.FieldViolation{Field: "age", Message: "Age is required"})
	}
	if u.Email == "" {
		violations = append(violations, errs.FieldViolation{Field: "email", Message: "Email is required"})
	}
	if u.Password == "" {
		violations = append(violations, errs.FieldViolation{Field: "password", Message: "Password is required"})
	}

	if len(violations) > 0 {
		return &errs.ValidationError{Violations: violations}
	}

	return nil
}
