package seed

import (
	"context"
	"fmt"

	"careconnect/internal/service"
	"careconnect/internal/utils"
	"careconnect/pkg/types"
)

// SupportRequests lists the demo contact-form submissions. They go through
// the same validation as real submissions, so a field that no longer
// passes the schema fails the seed run.
var SupportRequests = []types.SupportRequestForm{
	{
		FullName:    utils.StringPtr("Maria Gonzalez"),
		Email:       utils.StringPtr("maria.gonzalez@example.com"),
		InquiryType: utils.StringPtr(string(types.InquiryTypePatient)),
		Message:     utils.StringPtr("I would like to know whether you accept new patients for diabetes care."),
	},
	{
		FullName:    utils.StringPtr("Daniel Okafor"),
		Email:       utils.StringPtr("d.okafor@example.com"),
		InquiryType: utils.StringPtr(string(types.InquiryTypeVolunteer)),
		Message:     utils.StringPtr("I am a retired nurse and would love to volunteer on weekends."),
	},
	{
		FullName: utils.StringPtr("Priya Raman"),
		Email:    utils.StringPtr("priya.raman@example.com"),
		Message:  utils.StringPtr("What are your opening hours during public holidays?"),
	},
}

func SeedSupportRequests(ctx context.Context, svc *service.SupportService) ([]*types.SupportRequest, error) {
	created := make([]*types.SupportRequest, 0, len(SupportRequests))
	for i, form := range SupportRequests {
		req, err := svc.Create(ctx, utils.FormToMap(form))
		if err != nil {
			return created, fmt.Errorf("failed to seed support request %d (%s): %w", i, utils.PtrString(form.FullName), err)
		}
		created = append(created, req)
	}

	return created, nil
}
