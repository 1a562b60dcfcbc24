package repository

import "go-pos-ledger/internal/model"

// UserRepository keeps emails unique: Create and Mutate fail with
// ErrDuplicate when another user already holds the email.
type UserRepository interface {
	FindAll() []model.User
	FindByID(id int) (model.User, error)
	FindByEmail(email string) (model.User, error)
	Create(user model.User) (model.User, error)
	Update(user model.User) (model.User, error)
	Mutate(id int, fn func(model.User) (model.User, error)) (model.User, error)
	UpdatePassword(id int, hashedPassword string) error
	Delete(id int) error
	SeedDefaults()
}

type userRepo struct {
	t *table[model.User]
}

func NewUserRepo() UserRepository {
	t := newTable(
		func(u model.User) int { return u.ID },
		func(u *model.User, id int) { u.ID = id },
	)
	t.key = func(u model.User) string { return u.Email }
	return &userRepo{t: t}
}

func (r *userRepo) FindAll() []model.User {
	return r.t.all()
}

func (r *userRepo) FindByID(id int) (model.User, error) {
	return r.t.find(id)
}

func (r *userRepo) FindByEmail(email string) (model.User, error) {
	found := r.t.filter(func(u model.User) bool { return u.Email == email })
	if len(found) == 0 {
		return model.User{}, ErrRecordNotFound
	}
	return found[0], nil
}

func (r *userRepo) Create(user model.User) (model.User, error) {
	return r.t.insert(user)
}

func (r *userRepo) Update(user model.User) (model.User, error) {
	return r.t.mutate(user.ID, func(model.User) (model.User, error) { return user, nil })
}

func (r *userRepo) Mutate(id int, fn func(model.User) (model.User, error)) (model.User, error) {
	return r.t.mutate(id, fn)
}

func (r *userRepo) UpdatePassword(id int, hashedPassword string) error {
	_, err := r.t.mutate(id, func(u model.User) (model.User, error) {
		u.Password = hashedPassword
		return u, nil
	})
	return err
}

func (r *userRepo) Delete(id int) error {
	return r.t.remove(id)
}

func (r *userRepo) SeedDefaults() {
	r.t.reset(model.DefaultUsers())
}
