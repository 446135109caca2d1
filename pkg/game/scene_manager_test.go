package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	closeCalled  bool
	deltaTime    float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) Close() {
	m.closeCalled = true
}

// TestSceneManagerUpdateDraw verifies that Update and Draw reach the current scene.
func TestSceneManagerUpdateDraw(t *testing.T) {
	sm := NewSceneManager()
	// 没有场景时不 panic
	sm.Update(0.016)
	sm.Draw(nil)
	sm.Close()

	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)
	if sm.GetCurrentScene() != mockScene {
		t.Fatal("SwitchTo did not set the current scene correctly")
	}

	sm.Update(0.016)
	sm.Draw(nil)
	if !mockScene.updateCalled || mockScene.deltaTime != 0.016 {
		t.Errorf("Update not forwarded: called=%v dt=%v", mockScene.updateCalled, mockScene.deltaTime)
	}
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}

	sm.Close()
	if !mockScene.closeCalled {
		t.Error("Close should be forwarded to scenes implementing Closer")
	}
}

// TestSceneManagerSwitchBetweenScenes verifies switching between multiple scenes.
func TestSceneManagerSwitchBetweenScenes(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.Update(0.016)
	sm.SwitchTo(scene2)
	sm.Update(0.016)

	if !scene1.updateCalled || !scene2.updateCalled {
		t.Error("both scenes should have been updated once")
	}
}

// TestSceneManagerLoadScene 测试通过工厂加载场景
func TestSceneManagerLoadScene(t *testing.T) {
	sm := NewSceneManager()
	if sm.LoadScene(SceneGame) {
		t.Fatal("LoadScene without factory should fail")
	}

	created := &MockScene{}
	sm.SetSceneFactory(func(name string) Scene {
		if name == SceneGame {
			return created
		}
		return nil
	})

	if !sm.LoadScene(SceneGame) {
		t.Fatal("LoadScene(game) should succeed")
	}
	if sm.GetCurrentScene() != created {
		t.Error("current scene should be the factory result")
	}
	if sm.LoadScene("missing") {
		t.Error("LoadScene(missing) should fail")
	}
	if sm.GetCurrentScene() != created {
		t.Error("failed load must keep the current scene")
	}
}
