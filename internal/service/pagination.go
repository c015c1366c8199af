package service

import (
	"yatube/internal/api/dto"
)

// paginate clamps page into [1..numPages] and returns the page metadata
// plus the row offset. Out-of-range page numbers land on the last valid
// page instead of erroring.
func paginate(count int64, page, pageSize int) (dto.PageDTO, int) {
	numPages := int((count + int64(pageSize) - 1) / int64(pageSize))
	if numPages < 1 {
		numPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > numPages {
		page = numPages
	}

	meta := dto.PageDTO{
		Count:    count,
		Page:     page,
		NumPages: numPages,
		HasNext:  page < numPages,
		HasPrev:  page > 1,
	}
	return meta, (page - 1) * pageSize
}
