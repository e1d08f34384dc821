package api

import (
	"strconv"
	"time"

	"github.com/cyclia-app/cyclia/internal/services"
	"github.com/gofiber/fiber/v2"
)

type cycleSymptomPayload struct {
	SymptomID uint   `json:"symptom_id"`
	Intensity int    `json:"intensity"`
	Date      string `json:"date"`
}

type cyclePayload struct {
	StartDate string                `json:"start_date"`
	EndDate   string                `json:"end_date"`
	Notes     string                `json:"notes"`
	Symptoms  []cycleSymptomPayload `json:"symptoms"`
}

func (handler *Handler) ListCycles(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	cycles, err := handler.cycles.List(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch cycles")
	}
	return c.JSON(buildCycleListView(cycles))
}

func (handler *Handler) GetCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	cycleID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle id")
	}

	cycle, err := handler.cycles.Get(cycleID, user.ID)
	if err != nil {
		return respondServiceError(c, err, "failed to fetch cycle")
	}
	return c.JSON(buildCycleView(cycle))
}

func (handler *Handler) CreateCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := parseCyclePayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	cycle, err := handler.cycles.Create(user.ID, input)
	if err != nil {
		return respondServiceError(c, err, "failed to create cycle")
	}
	return c.Status(fiber.StatusCreated).JSON(buildCycleView(cycle))
}

func (handler *Handler) UpdateCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	cycleID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle id")
	}

	input, err := parseCyclePayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	cycle, err := handler.cycles.Update(cycleID, user.ID, input)
	if err != nil {
		return respondServiceError(c, err, "failed to update cycle")
	}
	return c.JSON(buildCycleView(cycle))
}

func (handler *Handler) DeleteCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	cycleID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle id")
	}

	if err := handler.cycles.Delete(cycleID, user.ID); err != nil {
		return respondServiceError(c, err, "failed to delete cycle")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) AddCycleSymptom(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	cycleID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle id")
	}

	payload := cycleSymptomPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	input, err := buildSymptomInput(payload)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	symptom, err := handler.cycles.AddSymptom(cycleID, user.ID, input)
	if err != nil {
		return respondServiceError(c, err, "failed to add symptom")
	}
	return c.Status(fiber.StatusCreated).JSON(buildCycleSymptomView(symptom))
}

func (handler *Handler) RemoveCycleSymptom(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	cycleID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle id")
	}
	assocID, err := parseIDParam(c, "assocId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid symptom id")
	}

	if err := handler.cycles.RemoveSymptom(cycleID, assocID, user.ID); err != nil {
		return respondServiceError(c, err, "failed to remove symptom")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func parseCyclePayload(c *fiber.Ctx) (services.CycleInput, error) {
	payload := cyclePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.CycleInput{}, err
	}

	start, err := time.Parse(dateLayout, payload.StartDate)
	if err != nil {
		return services.CycleInput{}, err
	}
	end, err := time.Parse(dateLayout, payload.EndDate)
	if err != nil {
		return services.CycleInput{}, err
	}

	symptoms := make([]services.SymptomInput, 0, len(payload.Symptoms))
	for _, symptomPayload := range payload.Symptoms {
		input, err := buildSymptomInput(symptomPayload)
		if err != nil {
			return services.CycleInput{}, err
		}
		symptoms = append(symptoms, input)
	}

	return services.CycleInput{
		StartDate: start,
		EndDate:   end,
		Notes:     payload.Notes,
		Symptoms:  symptoms,
	}, nil
}

func buildSymptomInput(payload cycleSymptomPayload) (services.SymptomInput, error) {
	date, err := time.Parse(dateLayout, payload.Date)
	if err != nil {
		return services.SymptomInput{}, err
	}
	return services.SymptomInput{
		SymptomID: payload.SymptomID,
		Intensity: payload.Intensity,
		Date:      date,
	}, nil
}
