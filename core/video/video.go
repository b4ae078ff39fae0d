package video

// Video is one catalog entry. Its id is chosen by the client.
type Video struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Views int64  `json:"views" db:"views"`
	Likes int64  `json:"likes" db:"likes"`
}

// VideoPut is the body of a create request. Fields are pointers so that an
// absent field can be told apart from a zero one.
type VideoPut struct {
	Name  *string `json:"name" validate:"required,max=100"`
	Views *int64  `json:"views" validate:"required"`
	Likes *int64  `json:"likes" validate:"required"`
}

func (vp VideoPut) Video(id int64) Video {
	return Video{
		ID:    id,
		Name:  *vp.Name,
		Views: *vp.Views,
		Likes: *vp.Likes,
	}
}
