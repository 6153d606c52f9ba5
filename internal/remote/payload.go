// internal/remote/payload.go
package remote

import "dsa_tracker/internal/model"

// リモートサービスのJSON表現。model の型とはフィールド名が異なるためここで変換します。

type topicPayload struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (p topicPayload) toModel() model.Topic {
	return model.Topic{ID: p.ID, Name: p.Name, Description: p.Description}
}

type problemPayload struct {
	ID            string `json:"_id"`
	TopicID       string `json:"topicId"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Difficulty    string `json:"difficulty"`
	YoutubeLink   string `json:"youtubeLink"`
	LeetcodeLink  string `json:"leetcodeLink"`
	CodeforceLink string `json:"codeforceLink"`
	ArticleLink   string `json:"articleLink"`
}

func (p problemPayload) toModel() model.Problem {
	return model.Problem{
		ID:          p.ID,
		TopicID:     p.TopicID,
		Title:       p.Title,
		Description: p.Description,
		Difficulty:  model.Difficulty(p.Difficulty),
		Links: model.Links{
			YouTube:    p.YoutubeLink,
			LeetCode:   p.LeetcodeLink,
			Codeforces: p.CodeforceLink,
			Article:    p.ArticleLink,
		},
	}
}

type progressPayload struct {
	ProblemID string `json:"problemId"`
	Completed bool   `json:"completed"`
}

func (p progressPayload) toModel() model.ProgressRecord {
	return model.ProgressRecord{ProblemID: p.ProblemID, Completed: p.Completed}
}

type userPayload struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token,omitempty"`
}

func (p userPayload) toProfile() model.UserProfile {
	return model.UserProfile{ID: p.ID, Name: p.Name, Email: p.Email}
}

type toggleRequest struct {
	ProblemID string `json:"problemId"`
}

type setProgressRequest struct {
	Completed bool `json:"completed"`
}

type errorPayload struct {
	Message string `json:"message"`
}

func convertAll[P any, M any](payloads []P, convert func(P) M) []M {
	result := make([]M, 0, len(payloads))
	for _, p := range payloads {
		result = append(result, convert(p))
	}
	return result
}
