// Package gql exposes the survey operations as a GraphQL schema built in
// code with graphql-go, one query/mutation per service operation.
package gql

import (
	"github.com/graphql-go/graphql"

	"pollbase/internal/model"
	"pollbase/internal/service"
)

// Resolver bundles the services the schema resolves against.
type Resolver struct {
	Surveys   *service.SurveyService
	Questions *service.QuestionService
	Options   *service.OptionService
	Answers   *service.AnswerService
}

type builder struct {
	r *Resolver

	surveyType   *graphql.Object
	questionType *graphql.Object
	optionType   *graphql.Object
	answerType   *graphql.Object
}

// NewSchema builds the executable schema for the given resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	b := &builder{r: r}
	b.buildTypes()

	query := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: merge(b.surveyQueries(), b.questionQueries(), b.optionQueries(), b.answerQueries()),
	})
	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Mutation",
		Fields: merge(b.surveyMutations(), b.questionMutations(), b.optionMutations(), b.answerMutations()),
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

func (b *builder) buildTypes() {
	b.optionType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Option",
		Fields: graphql.Fields{
			"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"content": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"score":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	b.questionType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Question",
		Fields: graphql.Fields{
			"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"content": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})
	b.questionType.AddFieldConfig("options", &graphql.Field{
		Type: graphql.NewList(b.optionType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			question := p.Source.(*model.Question)
			options, err := b.r.Options.GetByQuestionID(p.Context, question.ID)
			return options, wrapErr(err)
		},
	})

	b.surveyType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Survey",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
			"isCompleted": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		},
	})

	b.answerType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Answer",
		Fields: graphql.Fields{
			"id": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})
	b.answerType.AddFieldConfig("question", &graphql.Field{
		Type: b.questionType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			answer := p.Source.(*model.Answer)
			question, err := b.r.Questions.GetByID(p.Context, answer.QuestionID)
			return question, wrapErr(err)
		},
	})
	b.answerType.AddFieldConfig("selectedOptions", &graphql.Field{
		Type: graphql.NewList(b.optionType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			answer := p.Source.(*model.Answer)
			options, err := b.r.Options.GetByIDs(p.Context, answer.SelectedOptionIDs)
			return options, wrapErr(err)
		},
	})
	b.answerType.AddFieldConfig("survey", &graphql.Field{
		Type: b.surveyType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			answer := p.Source.(*model.Answer)
			if answer.SurveyID == 0 {
				return nil, nil
			}
			survey, err := b.r.Surveys.GetByID(p.Context, answer.SurveyID)
			return survey, wrapErr(err)
		},
	})
	b.surveyType.AddFieldConfig("answers", &graphql.Field{
		Type: graphql.NewList(b.answerType),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			survey := p.Source.(*model.Survey)
			answers, err := b.r.Surveys.GetAnswers(p.Context, survey.ID)
			return answers, wrapErr(err)
		},
	})
}

func merge(fieldMaps ...graphql.Fields) graphql.Fields {
	out := graphql.Fields{}
	for _, fields := range fieldMaps {
		for name, field := range fields {
			out[name] = field
		}
	}
	return out
}

func idArg() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
	}
}
