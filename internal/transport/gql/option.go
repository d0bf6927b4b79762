package gql

import (
	"github.com/graphql-go/graphql"

	"pollbase/internal/service"
)

func (b *builder) optionQueries() graphql.Fields {
	return graphql.Fields{
		"getOption": &graphql.Field{
			Type: b.optionType,
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				option, err := b.r.Options.GetByID(p.Context, argInt64(p.Args, "id"))
				return option, wrapErr(err)
			},
		},
		"getAllOptions": &graphql.Field{
			Type: graphql.NewList(b.optionType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				options, err := b.r.Options.GetAll(p.Context)
				return options, wrapErr(err)
			},
		},
	}
}

func (b *builder) optionMutations() graphql.Fields {
	createOptionInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateOptionInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"content":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"score":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"questionId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})
	updateOptionInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateOptionInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"content": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"score":   &graphql.InputObjectFieldConfig{Type: graphql.Int},
		},
	})

	return graphql.Fields{
		"createOption": &graphql.Field{
			Type: b.optionType,
			Args: graphql.FieldConfigArgument{
				"createOptionInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createOptionInput)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				m := argMap(p.Args, "createOptionInput")
				input := service.CreateOptionInput{
					Score: optInt(m, "score"),
				}
				if content := optString(m, "content"); content != nil {
					input.Content = *content
				}
				if questionID := optInt64(m, "questionId"); questionID != nil {
					input.QuestionID = *questionID
				}
				option, err := b.r.Options.Create(p.Context, input)
				return option, wrapErr(err)
			},
		},
		"updateOption": &graphql.Field{
			Type: b.optionType,
			Args: graphql.FieldConfigArgument{
				"id":                &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"updateOptionInput": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateOptionInput)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				m := argMap(p.Args, "updateOptionInput")
				option, err := b.r.Options.Update(p.Context, argInt64(p.Args, "id"), service.UpdateOptionInput{
					Content: optString(m, "content"),
					Score:   optInt(m, "score"),
				})
				return option, wrapErr(err)
			},
		},
		"deleteOption": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
			Args: idArg(),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				ok, err := b.r.Options.Delete(p.Context, argInt64(p.Args, "id"))
				return ok, wrapErr(err)
			},
		},
	}
}
