package repoargs

type CreateUser struct {
	Company  string
	Email    string
	Password string
}
