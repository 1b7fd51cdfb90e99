package models

type Business struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	BusinessName string `json:"business_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Specialty    string `json:"specialty"`
	Description  string `json:"description"`
	ProfileImage string `json:"profile_image,omitempty"`
	CoverImage   string `json:"cover_image,omitempty"`
	CreatedAt    string `json:"created_at"`
}

func (*Business) Role() Role { return RoleBusiness }

func (b *Business) DisplayName() string { return b.BusinessName }

func (b *Business) ContactEmail() string { return b.Email }

func (*Business) isProfile() {}

type BusinessRegistration struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	BusinessName string `json:"business_name"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Specialty    string `json:"specialty,omitempty"`
	Description  string `json:"description,omitempty"`
}

// BusinessUpdate is the body of PUT /business/profile; the backend names
// the business "name" and the specialty "category" here.
type BusinessUpdate struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ImageKind names one of the two image slots of a business.
type ImageKind string

const (
	ImageProfile ImageKind = "profile"
	ImageCover   ImageKind = "cover"
)

func ParseImageKind(s string) (ImageKind, bool) {
	switch ImageKind(s) {
	case ImageProfile, ImageCover:
		return ImageKind(s), true
	}
	return "", false
}

type UploadResult struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}
