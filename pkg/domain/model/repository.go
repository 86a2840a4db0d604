package model

type Repository struct {
	Owner string
	Name  string
}

func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

func (r Repository) SSHURL() string {
	return "git@github.com:" + r.Owner + "/" + r.Name + ".git"
}

func (r Repository) HTMLURL() string {
	return "https://github.com/" + r.Owner + "/" + r.Name
}
