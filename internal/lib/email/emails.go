package email

// SendWelcomeEmail sends the post-registration greeting to to.
func (c *Client) SendWelcomeEmail(to string) error {
	data := map[string]string{
		"Email": to,
	}

	return c.SendEmail(
		to,
		"Welcome to Naga!",
		TemplateWelcome,
		data,
	)
}
