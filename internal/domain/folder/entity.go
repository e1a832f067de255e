package folder

type (
	ID     uint64
	Folder struct {
		ID   ID
		Name string
	}
	Folders []*Folder
)
