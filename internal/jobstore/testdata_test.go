package jobstore

import "github.com/fr4nk3nst1ner/jobanalysis/internal/models"

const sampleJobs = `[
  {"Title": "Backend Engineer", "Posted": "3 hours", "Type": "Full-time", "Level": "Senior", "Skill": "Go", "Detail": "Build APIs", "Link": "https://jobs.example.com/1"},
  {"Title": "data analyst", "Posted": "2 days", "Type": "Contract", "Level": "Junior", "Skill": "SQL", "Detail": "Reports"},
  {"Title": "Cloud Architect", "Posted": "5 hours", "Type": "Full-time", "Level": "Senior", "Skill": "AWS", "Detail": "Design"},
  {"Title": "Android Developer", "Posted": "10 minutes", "Type": "Part-time", "Level": "Mid", "Skill": "Kotlin", "Detail": "Apps"},
  {"Title": "Éclair Baker", "Posted": "5 hours", "Type": "Full-time", "Level": "Junior", "Skill": "Go", "Detail": "Pastry"}
]`

func titles(jobs []models.Job) []string {
	out := make([]string, len(jobs))
	for i, job := range jobs {
		out[i] = job.Title
	}
	return out
}

func ids(jobs []models.Job) []int {
	out := make([]int, len(jobs))
	for i, job := range jobs {
		out[i] = job.ID
	}
	return out
}

func mustImport(raw string) State {
	s, err := Import(Empty(), []byte(raw))
	if err != nil {
		panic(err)
	}
	return s
}
