package model

// SecurityInfo is the result of the header heuristic. Password flags mirror
// IsEncrypted and Permissions are always fully open; no policy is parsed.
type SecurityInfo struct {
	IsEncrypted      bool        `json:"is_encrypted"`
	HasUserPassword  bool        `json:"has_user_password"`
	HasOwnerPassword bool        `json:"has_owner_password"`
	Permissions      Permissions `json:"permissions"`
}

type Permissions struct {
	CanPrint    bool `json:"can_print"`
	CanCopy     bool `json:"can_copy"`
	CanModify   bool `json:"can_modify"`
	CanAnnotate bool `json:"can_annotate"`
}

// OpenPermissions grants everything.
func OpenPermissions() Permissions {
	return Permissions{CanPrint: true, CanCopy: true, CanModify: true, CanAnnotate: true}
}

// FileStats describes a path on disk.
type FileStats struct {
	Size   int64 `json:"size"`
	IsFile bool  `json:"is_file"`
	IsDir  bool  `json:"is_dir"`
}

// PDFInfo is what the page scan can tell about a document.
type PDFInfo struct {
	FileName  string `json:"file_name"`
	PageCount int    `json:"page_count"`
}
