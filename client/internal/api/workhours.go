package api

import (
	"context"

	"github.com/aeroclub/vereinsflieger-go/client/internal/endpoint"
	"github.com/aeroclub/vereinsflieger-go/client/internal/request"
	"github.com/aeroclub/vereinsflieger-go/client/internal/types"
)

// AddWorkHours records a work-hours entry. Hours is always sent.
func AddWorkHours(ctx context.Context, s Sender, token string, w types.WorkHours) (*types.Response, error) {
	args := request.Args{
		"uid":      w.UID,
		"jobdate":  w.JobDate,
		"jobtext":  w.JobText,
		"hours":    w.Hours,
		"category": w.Category,
	}
	put(args, "timefrom", w.TimeFrom)
	put(args, "timeto", w.TimeTo)
	put(args, "status", w.Status)
	put(args, "comment", w.Comment)
	return call(ctx, s, endpoint.AddWorkHours, token, args)
}

// EditWorkHours updates the work-hours entry id.
func EditWorkHours(ctx context.Context, s Sender, token string, id int64, o types.EditWorkHoursOptions) (*types.Response, error) {
	args := request.Args{"workhoursid": id}
	put(args, "jobdate", o.JobDate)
	put(args, "jobtext", o.JobText)
	put(args, "hours", o.Hours)
	put(args, "comment", o.Comment)
	return call(ctx, s, endpoint.EditWorkHours, token, args)
}

// DeleteWorkHours removes the work-hours entry id.
func DeleteWorkHours(ctx context.Context, s Sender, token string, id int64) (*types.Response, error) {
	return call(ctx, s, endpoint.DeleteWorkHours, token, request.Args{"workhoursid": id})
}

// GetWorkHours fetches the work-hours entry id.
func GetWorkHours(ctx context.Context, s Sender, token string, id int64) (*types.Response, error) {
	return call(ctx, s, endpoint.GetWorkHours, token, request.Args{"workhoursid": id})
}

// ListWorkHoursByDateRange lists entries between from and to.
func ListWorkHoursByDateRange(ctx context.Context, s Sender, token, from, to string) (*types.Response, error) {
	return call(ctx, s, endpoint.ListWorkHoursByDateRange, token, request.Args{"datefrom": from, "dateto": to})
}

// ListWorkHourCategories lists the configured work categories.
func ListWorkHourCategories(ctx context.Context, s Sender, token string) (*types.Response, error) {
	return call(ctx, s, endpoint.ListWorkHourCategories, token, nil)
}
