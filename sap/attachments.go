package sap

type attachmentResult struct {
	AbsoluteEntry int `json:"AbsoluteEntry"`
}

// UploadAttachment sends one binary file to the service layer and returns the
// attachment reference. Linking it to a document is a separate call
// (LinkAttachment) so a failed link can be retried without re-uploading.
func (c *Client) UploadAttachment(filePath string) (int, error) {
	var result attachmentResult
	if err := c.uploadFile("/Attachments2", filePath, &result); err != nil {
		return 0, err
	}
	return result.AbsoluteEntry, nil
}
