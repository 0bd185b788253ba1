package parser

import "github.com/yourusername/resumecoach-api/internal/model"

// BuildProfile runs every extractor against the same raw text and assembles
// the result. It never fails: extractors that find nothing contribute empty
// values, and identical input always yields an identical profile.
//
// Name and location are not extracted here. Name defaults to the account
// name at upload time; location extraction is a possible later addition.
func BuildProfile(rawText string) model.CandidateProfile {
	links := ExtractLinks(rawText)
	if links == nil {
		links = []string{}
	}
	return model.CandidateProfile{
		PersonalInfo: model.PersonalInfo{
			Email: ExtractEmail(rawText),
			Phone: ExtractPhone(rawText),
			Links: links,
		},
		Summary:    ExtractSummary(rawText),
		Skills:     ExtractSkills(rawText),
		Experience: ExtractExperience(rawText),
		Education:  ExtractEducation(rawText),
		Projects:   ExtractProjects(rawText),
	}
}
