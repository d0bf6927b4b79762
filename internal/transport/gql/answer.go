package gql

import (
	"github.com/graphql-go/graphql"

	"pollbase/internal/service"
)

func (b *builder) answerQueries() graphql.Fields {
	return graphql.Fields{
		"getAnswer": &graphql.Field{
			Type: b.answerType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				answer, err := b.r.Answers.GetByID(p.Context, argInt64(p.Args, "id"))
				return answer, wrapErr(err)
			},
		},
		"getAllAnswers": &graphql.Field{
			Type: graphql.NewList(b.answerType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				answers, err := b.r.Answers.GetAll(p.Context)
				return answers, wrapErr(err)
			},
		},
	}
}

func (b *builder) answerMutations() graphql.Fields {
	createAnswerInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateAnswerInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"questionId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"selectedOptionIds": &graphql.InputObjectFieldConfig{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.Int))),
			},
		},
	})
	updateAnswerInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateAnswerInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"questionId":        &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"selectedOptionIds": &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.Int))},
		},
	})

	return graphql.Fields{
		"createAnswer": &graphql.Field{
			Type: b.answerType,
			Args: graphql.FieldConfigArgument{
				"createAnswerInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createAnswerInput)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				m := argMap(p.Args, "createAnswerInput")
				input := service.CreateAnswerInput{
					SelectedOptionIDs: int64List(m["selectedOptionIds"]),
				}
				if questionID := optInt64(m, "questionId"); questionID != nil {
					input.QuestionID = *questionID
				}
				answer, err := b.r.Answers.Create(p.Context, input)
				return answer, wrapErr(err)
			},
		},
		"updateAnswer": &graphql.Field{
			Type: b.answerType,
			Args: graphql.FieldConfigArgument{
				"id":                &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"updateAnswerInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateAnswerInput)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				m := argMap(p.Args, "updateAnswerInput")
				answer, err := b.r.Answers.Update(p.Context, argInt64(p.Args, "id"), service.UpdateAnswerInput{
					QuestionID:        optInt64(m, "questionId"),
					SelectedOptionIDs: int64List(m["selectedOptionIds"]),
				})
				return answer, wrapErr(err)
			},
		},
		"deleteAnswer": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				ok, err := b.r.Answers.Delete(p.Context, argInt64(p.Args, "id"))
				return ok, wrapErr(err)
			},
		},
	}
}
