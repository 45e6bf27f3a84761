package repoargs

type RepositoryName string

const (
	AdminRepoName RepositoryName = "admin"
	UserRepoName  RepositoryName = "user"
	PartRepoName  RepositoryName = "part"
	OrderRepoName RepositoryName = "order"
)
