package gql

import (
	"github.com/graphql-go/graphql"

	"pollbase/internal/service"
)

func (b *builder) surveyQueries() graphql.Fields {
	return graphql.Fields{
		"getSurvey": &graphql.Field{
			Type: b.surveyType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				survey, err := b.r.Surveys.GetByID(p.Context, argInt64(p.Args, "id"))
				return survey, wrapErr(err)
			},
		},
		"getAllSurveys": &graphql.Field{
			Type: graphql.NewList(b.surveyType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				surveys, err := b.r.Surveys.GetAll(p.Context)
				return surveys, wrapErr(err)
			},
		},
		"getCompletedSurveys": &graphql.Field{
			Type: graphql.NewList(b.surveyType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				surveys, err := b.r.Surveys.GetCompleted(p.Context)
				return surveys, wrapErr(err)
			},
		},
		"getSurveyTotalScore": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				score, err := b.r.Surveys.TotalScore(p.Context, argInt64(p.Args, "id"))
				return score, wrapErr(err)
			},
		},
	}
}

func (b *builder) surveyMutations() graphql.Fields {
	createSurveyInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateSurveyInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"isCompleted": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		},
	})
	updateSurveyInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateSurveyInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":       &graphql.InputObjectFieldConfig{Type: graphql.String},
			"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"isCompleted": &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		},
	})
	answerSubmissionInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AnswerSubmissionInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"questionId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"selectedOptionIds": &graphql.InputObjectFieldConfig{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.Int))),
			},
		},
	})
	completeSurveyInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CompleteSurveyInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"answers": &graphql.InputObjectFieldConfig{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(answerSubmissionInput))),
			},
		},
	})

	return graphql.Fields{
		"createSurvey": &graphql.Field{
			Type: b.surveyType,
			Args: graphql.FieldConfigArgument{
				"createSurveyInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createSurveyInput)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				m := argMap(p.Args, "createSurveyInput")
				input := service.CreateSurveyInput{
					IsCompleted: optBool(m, "isCompleted"),
				}
				if title := optString(m, "title"); title != nil {
					input.Title = *title
				}
				if description := optString(m, "description"); description != nil {
					input.Description = *description
				}
				survey, err := b.r.Surveys.Create(p.Context, input)
				return survey, wrapErr(err)
			},
		},
		"updateSurvey": &graphql.Field{
			Type: b.surveyType,
			Args: graphql.FieldConfigArgument{
				"id":                &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"updateSurveyInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateSurveyInput)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				m := argMap(p.Args, "updateSurveyInput")
				survey, err := b.r.Surveys.Update(p.Context, argInt64(p.Args, "id"), service.UpdateSurveyInput{
					Title:       optString(m, "title"),
					Description: optString(m, "description"),
					IsCompleted: optBool(m, "isCompleted"),
				})
				return survey, wrapErr(err)
			},
		},
		"deleteSurvey": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				ok, err := b.r.Surveys.Delete(p.Context, argInt64(p.Args, "id"))
				return ok, wrapErr(err)
			},
		},
		"completeSurvey": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Args: graphql.FieldConfigArgument{
				"id":                  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"completeSurveyInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(completeSurveyInput)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				m := argMap(p.Args, "completeSurveyInput")
				entries := mapList(m["answers"])
				answers := make([]service.AnswerSubmission, 0, len(entries))
				for _, entry := range entries {
					sub := service.AnswerSubmission{
						SelectedOptionIDs: int64List(entry["selectedOptionIds"]),
					}
					if questionID := optInt64(entry, "questionId"); questionID != nil {
						sub.QuestionID = *questionID
					}
					answers = append(answers, sub)
				}
				ok, err := b.r.Surveys.CompleteSurvey(p.Context, argInt64(p.Args, "id"), answers)
				return ok, wrapErr(err)
			},
		},
	}
}
