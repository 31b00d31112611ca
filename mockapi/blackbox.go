package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dugodofficials-cpu/customer-app-sub000/models"
)

// GET /blackbox/questions
func listQuestions(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.mu.Lock()
		defer store.mu.Unlock()

		answered := 0
		questions := make([]models.BlackBoxQuestion, 0, len(store.questions))
		for _, q := range store.questions {
			questions = append(questions, q.BlackBoxQuestion)
			if q.Correct != nil && *q.Correct {
				answered++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"questions": questions,
			"progress": models.BlackBoxProgress{
				Answered:  answered,
				Remaining: len(questions) - answered,
			},
		})
	}
}

// POST /blackbox/answer
func submitAnswer(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			QuestionID string `json:"questionId" binding:"required"`
			Answer     string `json:"answer" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store.mu.Lock()
		defer store.mu.Unlock()

		for _, q := range store.questions {
			if q.ID != input.QuestionID {
				continue
			}
			correct := normalizeAnswer(input.Answer) == q.accepted
			answer := input.Answer
			q.Answer = &answer
			q.Correct = &correct

			if correct {
				c.JSON(http.StatusOK, gin.H{"correct": true, "secret": q.secret})
			} else {
				c.JSON(http.StatusOK, gin.H{"correct": false})
			}
			return
		}

		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
	}
}
