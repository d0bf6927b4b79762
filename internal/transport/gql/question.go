package gql

import (
	"github.com/graphql-go/graphql"

	"pollbase/internal/service"
)

func (b *builder) questionQueries() graphql.Fields {
	return graphql.Fields{
		"getQuestion": &graphql.Field{
			Type: b.questionType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				question, err := b.r.Questions.GetByID(p.Context, argInt64(p.Args, "id"))
				return question, wrapErr(err)
			},
		},
		"getAllQuestions": &graphql.Field{
			Type: graphql.NewList(b.questionType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				questions, err := b.r.Questions.GetAll(p.Context)
				return questions, wrapErr(err)
			},
		},
	}
}

func (b *builder) questionMutations() graphql.Fields {
	createQuestionInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateQuestionInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"content":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"surveyIds": &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.Int))},
		},
	})
	updateQuestionInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateQuestionInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"content": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	return graphql.Fields{
		"createQuestion": &graphql.Field{
			Type: b.questionType,
			Args: graphql.FieldConfigArgument{
				"createQuestionInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createQuestionInput)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				m := argMap(p.Args, "createQuestionInput")
				input := service.CreateQuestionInput{
					SurveyIDs: int64List(m["surveyIds"]),
				}
				if content := optString(m, "content"); content != nil {
					input.Content = *content
				}
				question, err := b.r.Questions.Create(p.Context, input)
				return question, wrapErr(err)
			},
		},
		"updateQuestion": &graphql.Field{
			Type: b.questionType,
			Args: graphql.FieldConfigArgument{
				"id":                  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"updateQuestionInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateQuestionInput)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				m := argMap(p.Args, "updateQuestionInput")
				question, err := b.r.Questions.Update(p.Context, argInt64(p.Args, "id"), service.UpdateQuestionInput{
					Content: optString(m, "content"),
				})
				return question, wrapErr(err)
			},
		},
		"deleteQuestion": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				ok, err := b.r.Questions.Delete(p.Context, argInt64(p.Args, "id"))
				return ok, wrapErr(err)
			},
		},
	}
}
