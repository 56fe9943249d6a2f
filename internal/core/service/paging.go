package service

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// normalizePaging clamps page and limit to sane values: page defaults to 1,
// limit defaults to 10 and is capped at 100.
func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// totalPages computes ceil(total/limit).
func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
