package dto

// SubmitReviewRequest represents a product review submission.
type SubmitReviewRequest struct {
	ProductID int64  `json:"product_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	Rating    int    `json:"rating"`
	Review    string `json:"review"`
}

// Validate checks the review fields.
func (r *SubmitReviewRequest) Validate() (bool, string) {
	if r.ProductID <= 0 || r.UserName == "" || r.Review == "" {
		return false, "Please fill all required fields."
	}
	if r.Rating < 1 || r.Rating > 5 {
		return false, "Rating must be between 1 and 5."
	}
	return true, ""
}

// NewsletterRequest represents a newsletter subscription.
type NewsletterRequest struct {
	Email string `json:"email"`
}

// Validate checks that an email was submitted.
func (r *NewsletterRequest) Validate() (bool, string) {
	if r.Email == "" {
		return false, "Email is required."
	}
	return true, ""
}

// ContactRequest represents a contact form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate checks the contact form fields. Subject is optional.
func (r *ContactRequest) Validate() (bool, string) {
	if r.Name == "" || r.Email == "" || r.Message == "" {
		return false, "Please fill all required fields."
	}
	return true, ""
}
