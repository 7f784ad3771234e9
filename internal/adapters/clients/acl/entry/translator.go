package entry

import (
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/timesheet-service/internal/domain/timesheet"
)

// Query parameter names understood by the downstream list endpoint.
const (
	ParamEmployeeID  = "employee_id"
	ParamDateWorked  = "date_worked"
	ParamProjectCode = "project_code"
	ParamCostCode    = "cost_code"
	ParamExcludeID   = "exclude_id"
)

// ToExistingEntry converts a downstream EntryDTO to the domain view of a
// persisted entry. Hours is the sum of both buckets. An unknown status is
// kept verbatim.
func ToExistingEntry(dto *EntryDTO) timesheet.ExistingEntry {
	return timesheet.ExistingEntry{
		ID:     dto.ID,
		Hours:  dto.StandardHours.Add(dto.OvertimeHours),
		Status: timesheet.Status(dto.Status),
	}
}

// FirstMatch returns the first entry of the list whose ID differs from
// excludeID, or false if there is none. The downstream API is asked to apply
// the exclusion as well; filtering here keeps the result correct when it
// does not.
func FirstMatch(dto EntryListResponseDTO, excludeID *int64) (timesheet.ExistingEntry, bool) {
	for i := range dto.Entries {
		if excludeID != nil && dto.Entries[i].ID == *excludeID {
			continue
		}
		return ToExistingEntry(&dto.Entries[i]), true
	}
	return timesheet.ExistingEntry{}, false
}

// ToFindQuery builds the list query for a duplicate lookup.
func ToFindQuery(key timesheet.EntryKey, excludeID *int64) url.Values {
	q := url.Values{}
	q.Set(ParamEmployeeID, key.EmployeeID)
	q.Set(ParamDateWorked, key.DateWorked)
	q.Set(ParamProjectCode, key.ProjectCode)
	q.Set(ParamCostCode, key.CostCode)
	if excludeID != nil {
		q.Set(ParamExcludeID, strconv.FormatInt(*excludeID, 10))
	}
	return q
}
