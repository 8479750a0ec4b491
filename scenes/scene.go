package scenes

type SceneChanger interface {
	ChangeScene(scene interface{})
}
